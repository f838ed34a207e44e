package log

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger encapsula o logrus com suporte a ID de correlação
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}

type contextKey string

// CorrelationIDKey é a chave do ID de correlação no contexto
const CorrelationIDKey contextKey = "correlation_id"

// CorrelationIDHeader permite que o cliente propague o próprio ID
const CorrelationIDHeader = "X-Correlation-ID"

const correlationIDField = "correlation_id"

// campos mantidos em desenvolvimento
var developmentFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"marketplace":      true,
	"changed":          true,
}

type logger struct {
	entry *logrus.Entry
}

// L é a instância global
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// Configure aplica o nível e o formato de log conforme o ambiente
func Configure(level string) {
	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
			PadLevelText:    true,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("Nível de log inválido, usando info")
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

func (l *logger) WithField(key string, value any) Logger {
	if IsDevelopment() && !developmentFields[key] {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	if !IsDevelopment() {
		return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
	}

	relevant := make(logrus.Fields)
	for k, v := range fields {
		if developmentFields[k] {
			relevant[k] = v
		}
	}
	if len(relevant) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(relevant)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext adiciona o ID de correlação do contexto, se existir
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return l.WithField(correlationIDField, correlationID)
	}
	return l
}

func (l *logger) Debug(args ...any)                 { l.entry.Debug(args...) }
func (l *logger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *logger) Info(args ...any)                  { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...any)                  { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...any)                 { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

// WithCorrelationID grava um ID de correlação no contexto.
// Um ID vazio gera um novo UUID.
func WithCorrelationID(ctx context.Context, correlationID string) (context.Context, string) {
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
