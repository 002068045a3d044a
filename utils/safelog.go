// utils/safelog.go
//
// Leveled logging helpers that mask personal spending data when the server
// runs in release mode. Everything goes to the standard logger (stderr).
package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

var (
	// IsProduction masks amounts and record IDs in log output when set.
	IsProduction = os.Getenv("GIN_MODE") == "release" ||
		os.Getenv("ENVIRONMENT") == "production" ||
		os.Getenv("ENV") == "production"

	LogLevel = getLogLevel()
)

const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func getLogLevel() int {
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

var (
	// Decimal numbers that look like monetary amounts.
	amountRegex = regexp.MustCompile(`\b\d+[.,]\d{1,2}\b`)

	// 24-hex-char document IDs.
	objectIDRegex = regexp.MustCompile(`\b[0-9a-fA-F]{24}\b`)
)

// MaskString masks amounts and document IDs in production logs.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}
	result := amountRegex.ReplaceAllString(input, "***")
	result = objectIDRegex.ReplaceAllStringFunc(result, shortenID)
	return result
}

func shortenID(id string) string {
	if len(id) > 8 {
		return id[:8] + "..."
	}
	return "***"
}

// MaskAmount masks a monetary amount in production.
func MaskAmount(amount float64) string {
	if IsProduction {
		return "***"
	}
	return fmt.Sprintf("%.2f", amount)
}

// MaskID keeps only the first 8 characters of an ID in production.
func MaskID(id string) string {
	if !IsProduction {
		return id
	}
	return shortenID(id)
}

func SafeDebug(format string, args ...interface{}) {
	if LogLevel > LogLevelDebug {
		return
	}
	log.Printf("[DEBUG] %s", MaskString(fmt.Sprintf(format, args...)))
}

func SafeInfo(format string, args ...interface{}) {
	if LogLevel > LogLevelInfo {
		return
	}
	log.Printf("[INFO] %s", MaskString(fmt.Sprintf(format, args...)))
}

func SafeWarn(format string, args ...interface{}) {
	if LogLevel > LogLevelWarn {
		return
	}
	log.Printf("[WARN] %s", MaskString(fmt.Sprintf(format, args...)))
}

func SafeError(format string, args ...interface{}) {
	log.Printf("[ERROR] %s", MaskString(fmt.Sprintf(format, args...)))
}

// LogExpenseAction logs a store mutation without exposing amounts.
func LogExpenseAction(action, expenseID string) {
	log.Printf("[Expense] %s - ID: %s", action, MaskID(expenseID))
}

// LogAPIRequest logs one handled request.
func LogAPIRequest(method, path, requestID string, statusCode int, duration string) {
	if IsProduction {
		path = objectIDRegex.ReplaceAllStringFunc(path, shortenID)
	}
	log.Printf("[API] %s %s - Request: %s Status: %d Duration: %s",
		method, path, requestID, statusCode, duration)
}

// GetEnvMode returns the current environment mode.
func GetEnvMode() string {
	if IsProduction {
		return "production"
	}
	return "development"
}

// LogStartup logs application startup information.
func LogStartup(appName, version, port string) {
	log.Printf("🚀 %s v%s starting...", appName, version)
	log.Printf("   Mode: %s", GetEnvMode())
	log.Printf("   Port: %s", port)
	if IsProduction {
		log.Printf("   ⚠️  Production mode: amounts and IDs will be masked in logs")
	}
}
