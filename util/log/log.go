package log

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"reflect"
	"runtime"
	"strings"

	eParser "github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	logTimeFormat  = "2006-01-02 15:04:05.000"
	filePathPrefix = "blockrev"
)

// One output file per level.
var logFiles = map[logrus.Level]string{
	logrus.DebugLevel: "debug.log",
	logrus.InfoLevel:  "info.log",
	logrus.WarnLevel:  "warn.log",
	logrus.ErrorLevel: "error.log",
}

var (
	loggers   = map[logrus.Level]*logrus.Logger{}
	logPath   = "./logs"
	debug     bool
	logPrefix string
)

// Init creates global logger instances under ./logs.
func Init(debugMode bool) {
	InitAt(logPath, debugMode)
}

// InitAt creates global logger instances writing under dir.
func InitAt(dir string, debugMode bool) {
	err := os.MkdirAll(dir, 0700)
	if err != nil {
		panic(err)
	}

	logPath = dir
	debug = debugMode

	for level, fileName := range logFiles {
		loggers[level] = newLogger(fileName, level)
	}
}

// SetPrefix sets the output prefix for the logger, e.g., the config label.
func SetPrefix(prefix string) {
	logPrefix = prefix
}

func newLogger(fileName string, level logrus.Level) *logrus.Logger {
	fileName = path.Join(logPath, fileName)

	l := &logrus.Logger{
		Formatter: new(logFormatter),
		Level:     level,
		Hooks:     make(logrus.LevelHooks),
	}

	// Debug output is dropped entirely unless running in debug mode.
	if !debug && level >= logrus.DebugLevel {
		l.SetOutput(ioutil.Discard)
		return l
	}

	l.SetOutput(io.MultiWriter(os.Stdout, newLogWriter(fileName)))
	return l
}

func newLogWriter(logPath string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10,
		MaxBackups: 10,
		MaxAge:     30,
	}
}

func get(level logrus.Level) *logrus.Logger {
	l, ok := loggers[level]
	if !ok {
		// Not initialised yet, e.g. in package tests.
		l = logrus.New()
		l.SetOutput(ioutil.Discard)
	}

	return l
}

// logFormatter defines custom formatter for logrus
type logFormatter struct{}

// Format formats log output.
func (f *logFormatter) Format(e *logrus.Entry) ([]byte, error) {
	if logPrefix != "" {
		return []byte(fmt.Sprintf("%s [%s][%s] %s", e.Time.Format(logTimeFormat), logPrefix, e.Level.String(), e.Message)), nil
	}

	return []byte(fmt.Sprintf("%s [%s] %s", e.Time.Format(logTimeFormat), e.Level.String(), e.Message)), nil
}

// Debugf logs in Debug level.
func Debugf(format string, v ...interface{}) {
	get(logrus.DebugLevel).Debug(logHandler(format, v))
}

// Debug logs in Debug level.
func Debug(v ...interface{}) {
	get(logrus.DebugLevel).Debug(logHandler("", v))
}

// Infof logs in Info level.
func Infof(format string, v ...interface{}) {
	get(logrus.InfoLevel).Info(logHandler(format, v))
}

// Info logs in Info level.
func Info(v ...interface{}) {
	get(logrus.InfoLevel).Info(logHandler("", v))
}

// Warnf logs in Warn level.
func Warnf(format string, v ...interface{}) {
	get(logrus.WarnLevel).Warn(logHandler(format, v))
}

// Errorf logs in Error level.
func Errorf(format string, v ...interface{}) {
	get(logrus.ErrorLevel).Error(logHandler(format, v))
}

// Error logs in Error level.
func Error(v ...interface{}) {
	get(logrus.ErrorLevel).Error(logHandler("", v))
}

// Fatalf logs in Error level and exits.
func Fatalf(format string, v ...interface{}) {
	get(logrus.ErrorLevel).Fatal(logHandler(format, v))
}

// Fatal logs in Error level and exits.
func Fatal(v ...interface{}) {
	get(logrus.ErrorLevel).Fatal(logHandler("", v))
}

func logHandler(format string, v []interface{}) (msg string) {
	defer func() {
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
	}()

	if debug {
		msg = fmt.Sprintf("[%s] ", fileInfo())
	}

	if v == nil {
		return msg + format
	}

	for i := 0; i < len(v); i++ {
		v[i] = extract(v[i])
	}

	if format == "" {
		for _, v := range v {
			msg += fmt.Sprint(v)
		}
		return msg
	}

	return msg + fmt.Sprintf(format, v...)
}

// extract expands errors with their stack and structs into JSON.
func extract(v interface{}) interface{} {
	if v == nil {
		return nil
	}

	if e, ok := v.(error); ok {
		err := eParser.Wrap(e, 3)
		return fmt.Sprintf("%s\n%s", err.Error(), string(err.Stack()))
	}

	if stringer, ok := v.(fmt.Stringer); ok {
		return stringer.String()
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Struct:
		b, err := json.Marshal(v)
		if err != nil {
			e := eParser.Wrap(err, 0)
			return fmt.Sprintf("%s\n%s", e.Error(), string(e.Stack()))
		}
		return string(b)
	case reflect.Ptr:
		rv := reflect.ValueOf(v)
		if rv.IsNil() {
			return v
		}
		return extract(rv.Elem().Interface())
	default:
		return v
	}
}

func fileInfo() string {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		file = "<???>"
	} else if slash := strings.LastIndex(file, filePathPrefix); slash >= 0 {
		slash += strings.Index(file[slash:], "/") + 1
		file = file[slash:]
	}

	return fmt.Sprintf("%s:%d", file, line)
}
