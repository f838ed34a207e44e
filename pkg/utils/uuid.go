package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateVersion gera o identificador curto de uma versão de snapshot
func GenerateVersion() (string, error) {
	return gonanoid.Generate(characters, 10)
}
