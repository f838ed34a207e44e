package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa qualquer valor com indentação, para relatórios no terminal
func PrettyJson(in any) string {
	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return err.Error()
	}
	return string(buffer)
}
