package infra

import (
	"errors"
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

const maxStackDepth = 32

type Frame uintptr

func (frame Frame) pc() uintptr {
	return uintptr(frame) - 1
}

func (frame Frame) fileLine() (string, int) {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return "unknownFile", 0
	}
	return fn.FileLine(frame.pc())
}

func (frame Frame) name() string {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return "unknownFunc"
	}
	return fn.Name()
}

// Format characters:
// %s - source file
// %d - source line
// %n - function name
// %v - verbose, equivalent to %s:%d
// %+s - function name and full path, separated by \n\t
// %+v - equivalent to %+s:%d
func (frame Frame) Format(s fmt.State, verb rune) {
	file, line := frame.fileLine()
	switch verb {
	case 's':
		if s.Flag('+') {
			_, _ = io.WriteString(s, frame.name())
			_, _ = io.WriteString(s, "\n\t")
			_, _ = io.WriteString(s, file)
		} else {
			_, _ = io.WriteString(s, path.Base(file))
		}
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(line))
	case 'n':
		_, _ = io.WriteString(s, funcName(frame.name()))
	case 'v':
		frame.Format(s, 's')
		_, _ = io.WriteString(s, ":")
		frame.Format(s, 'd')
	}
}

func (frame Frame) MarshalText() ([]byte, error) {
	name := frame.name()
	if name == "unknownFunc" {
		return []byte("unknownFrame"), nil
	}
	file, line := frame.fileLine()
	builder := strings.Builder{}
	_, _ = builder.WriteString(name)
	_, _ = builder.WriteString(" ")
	_, _ = builder.WriteString(file)
	_, _ = builder.WriteString(":")
	_, _ = builder.WriteString(strconv.Itoa(line))
	return []byte(builder.String()), nil
}

func (frame Frame) MarshalJSON() ([]byte, error) {
	name := frame.name()
	if name == "unknownFunc" {
		return []byte("{\"frame\":\"unknownFrame\"}"), nil
	}
	file, line := frame.fileLine()
	builder := strings.Builder{}
	_, _ = builder.WriteString("{\"func\":\"")
	_, _ = builder.WriteString(name)
	_, _ = builder.WriteString("\",\"fileAndLine\":\"")
	_, _ = builder.WriteString(file)
	_, _ = builder.WriteString(":")
	_, _ = builder.WriteString(strconv.Itoa(line))
	_, _ = builder.WriteString("\"}")
	return []byte(builder.String()), nil
}

func funcName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}

type stack []Frame

func callers(skip int) stack {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	st := make(stack, 0, n)
	for i := 0; i < n; i++ {
		st = append(st, Frame(pcs[i]))
	}
	return st
}

func (st stack) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, frame := range st {
		text, _ := frame.MarshalText()
		enc.AppendByteString(text)
	}
	return nil
}

// ErrorStack is an error carrying the call frames where it was created.
// It is able to be inlined into zap logger directly.
type ErrorStack interface {
	error
	zapcore.ObjectMarshaler
	Unwrap() error
	Frames() []Frame
}

var _ ErrorStack = (*errorStack)(nil)

type errorStack struct {
	upper error // The wrapped errors, maybe combined by multierr.
	msg   string
	stack stack
}

func (es *errorStack) Error() string {
	switch {
	case es.upper == nil:
		return es.msg
	case es.msg == "":
		return es.upper.Error()
	default:
	}
	return es.msg + ": " + es.upper.Error()
}

func (es *errorStack) Unwrap() error {
	return es.upper
}

func (es *errorStack) Frames() []Frame {
	return es.stack
}

// Format %+v prints the error message and every frame.
func (es *errorStack) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		_, _ = io.WriteString(s, es.Error())
		if s.Flag('+') {
			for _, frame := range es.stack {
				_, _ = io.WriteString(s, "\n")
				frame.Format(s, verb)
			}
		}
	case 's':
		_, _ = io.WriteString(s, es.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", es.Error())
	}
}

func (es *errorStack) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("error", es.Error())
	if es.upper != nil {
		causes := multierr.Errors(es.upper)
		if err := enc.AddArray("errorCauses", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
			for _, cause := range causes {
				arr.AppendString(cause.Error())
			}
			return nil
		})); err != nil {
			return err
		}
	}
	return enc.AddArray("errorStack", es.stack)
}

func NewErrorStack(errMsg string) error {
	return &errorStack{
		msg:   errMsg,
		stack: callers(3),
	}
}

// WrapErrorStack keeps the frames of err if it is already an error stack.
func WrapErrorStack(err error) error {
	if err == nil {
		return nil
	}
	var es *errorStack
	if errors.As(err, &es) {
		return err
	}
	return &errorStack{
		upper: err,
		stack: callers(3),
	}
}

func WrapErrorStackWithMessage(err error, errMsg string) error {
	if err == nil {
		return NewErrorStack(errMsg)
	}
	return &errorStack{
		upper: err,
		msg:   errMsg,
		stack: callers(3),
	}
}

// AppendErrorStack combines errs into the causes of an error stack.
func AppendErrorStack(err error, errs ...error) error {
	merr := multierr.Combine(append([]error{err}, errs...)...)
	if merr == nil {
		return nil
	}
	return &errorStack{
		upper: merr,
		stack: callers(3),
	}
}
