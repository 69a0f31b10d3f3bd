package lldptlv

import (
	"fmt"

	"k8s.io/klog/v2"
)

// enum defining logging levels.
const (
	Default klog.Level = iota + 1
	Useful
	Extended
	Debug
)

// ErrorLogMsg helps in logging errors with message.
func ErrorLogMsg(message string, args ...interface{}) {
	logMessage := fmt.Sprintf(message, args...)
	klog.ErrorDepth(1, logMessage)
}

// WarningLogMsg helps in logging warnings with message.
func WarningLogMsg(message string, args ...interface{}) {
	logMessage := fmt.Sprintf(message, args...)
	klog.WarningDepth(1, logMessage)
}

// DefaultLog helps in logging with klog.level 1.
func DefaultLog(message string, args ...interface{}) {
	// If logging is disabled, don't evaluate the arguments
	if klog.V(Default).Enabled() {
		klog.InfoDepth(1, fmt.Sprintf(message, args...))
	}
}

// UsefulLogMsg helps in logging a message with klog.level 2.
func UsefulLogMsg(message string, args ...interface{}) {
	if klog.V(Useful).Enabled() {
		klog.InfoDepth(1, fmt.Sprintf(message, args...))
	}
}

// ExtendedLogMsg helps in logging a message with klog.level 3.
func ExtendedLogMsg(message string, args ...interface{}) {
	if klog.V(Extended).Enabled() {
		klog.InfoDepth(1, fmt.Sprintf(message, args...))
	}
}

// DebugLogMsg helps in logging a message with klog.level 4.
func DebugLogMsg(message string, args ...interface{}) {
	if klog.V(Debug).Enabled() {
		klog.InfoDepth(1, fmt.Sprintf(message, args...))
	}
}
