// Package interview turns a voice-assistant or direct request into a
// generated, persisted interview.
package interview

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shape identifies which request layout carried the parameters.
type Shape int

const (
	// ShapeFlat is a body whose root object holds the parameters.
	ShapeFlat Shape = iota
	// ShapeToolCall is a voice-assistant envelope with the parameters at
	// message.toolCalls[0].function.arguments.
	ShapeToolCall
)

func (s Shape) String() string {
	switch s {
	case ShapeToolCall:
		return "tool-call"
	default:
		return "flat"
	}
}

// Params is the normalised parameter set of a generation request. Values that
// arrived as numbers (typically amount) are carried in their decimal form.
type Params struct {
	Type      string `json:"type" validate:"required"`
	Role      string `json:"role" validate:"required"`
	Level     string `json:"level" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
	TechStack string `json:"techstack" validate:"required"`
	UserID    string `json:"userid,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their wire names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that every required parameter is present.
func (p Params) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate parameters: %w", err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field())
	}
	return &ErrMissingFields{Flow: FlowName, Fields: fields}
}

// DecodeRequest decodes body into parameters. When the tool-call arguments
// path holds a truthy value the envelope shape is used: a string there is
// parsed as JSON, anything else is taken as is. Otherwise the body itself is
// the parameter set. Parameters are not validated here.
func DecodeRequest(body []byte) (Params, Shape, error) {
	root, err := decodeJSON(body)
	if err != nil {
		return Params{}, ShapeFlat, &ErrInvalidBody{Reason: "body is not valid JSON", Cause: err}
	}

	shape := ShapeFlat
	data := root
	if args, ok := toolCallArguments(root); ok {
		shape = ShapeToolCall
		data = args
		if s, isString := args.(string); isString {
			data, err = decodeJSON([]byte(s))
			if err != nil {
				return Params{}, shape, &ErrInvalidBody{Reason: "tool call arguments are not valid JSON", Cause: err}
			}
		}
	}

	params, err := paramsFrom(data)
	if err != nil {
		return Params{}, shape, err
	}
	return params, shape, nil
}

// decodeJSON decodes a single JSON value, keeping numbers as json.Number.
func decodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

// toolCallArguments resolves message.toolCalls[0].function.arguments. Any
// step of the wrong type means the path does not resolve.
func toolCallArguments(root any) (any, bool) {
	body, ok := root.(map[string]any)
	if !ok {
		return nil, false
	}
	message, ok := body["message"].(map[string]any)
	if !ok {
		return nil, false
	}
	calls, ok := message["toolCalls"].([]any)
	if !ok || len(calls) == 0 {
		return nil, false
	}
	call, ok := calls[0].(map[string]any)
	if !ok {
		return nil, false
	}
	function, ok := call["function"].(map[string]any)
	if !ok {
		return nil, false
	}
	args := function["arguments"]
	if !truthy(args) {
		return nil, false
	}
	return args, true
}

// truthy reports whether v counts as present: null, false, 0 and "" do not.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

func paramsFrom(data any) (Params, error) {
	// A non-object parameter set has no fields; validation reports them all.
	obj, _ := data.(map[string]any)

	var p Params
	var err error
	fields := []struct {
		key string
		dst *string
	}{
		{"type", &p.Type},
		{"role", &p.Role},
		{"level", &p.Level},
		{"amount", &p.Amount},
		{"userid", &p.UserID},
	}
	for _, f := range fields {
		if *f.dst, err = scalarField(obj, f.key); err != nil {
			return Params{}, err
		}
	}

	switch v := obj["techstack"].(type) {
	case string:
		p.TechStack = v
	default:
		if truthy(v) {
			return Params{}, &ErrInvalidBody{Reason: "techstack must be a comma-separated string"}
		}
	}

	return p, nil
}

// scalarField returns obj[key] as text, or "" when it is absent or falsy.
func scalarField(obj map[string]any, key string) (string, error) {
	v := obj[key]
	if !truthy(v) {
		return "", nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return formatNumber(t), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", &ErrInvalidBody{Reason: key + " must be a string or number"}
	}
}

// formatNumber renders n the shortest way, so 5.0 becomes "5".
func formatNumber(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
