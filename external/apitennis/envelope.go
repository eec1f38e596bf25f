package apitennis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
)

// envelopeHeader is the {success, error, result} wrapper shared by every endpoint.
type envelopeHeader struct {
	Success flexString      `json:"success"`
	Error   flexString      `json:"error"`
	Result  json.RawMessage `json:"result"`
}

func (h envelopeHeader) businessError() bool {
	if h.Error.Valid && strings.TrimSpace(h.Error.Value) == "1" {
		return true
	}
	return h.Success.Valid && strings.TrimSpace(h.Success.Value) != "1"
}

type resultSpec struct {
	record   string
	required bool
}

type decoder struct {
	validate *validator.Validate
	logger   *logging.Logger
}

func newDecoder(logger *logging.Logger) *decoder {
	if logger == nil {
		logger = logging.Default()
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(flexFieldValue, flexString{}, flexKey{})

	return &decoder{validate: v, logger: logger}
}

// flexFieldValue exposes flexible scalars to the validator: absent values
// become nil so `required` fails, present ones (even empty) pass.
func flexFieldValue(field reflect.Value) interface{} {
	switch v := field.Interface().(type) {
	case flexString:
		if v.Valid {
			return &v.Value
		}
	case flexKey:
		if v.Valid {
			return &v.Value
		}
	}
	return nil
}

// unwrapResult strips the envelope and decodes the result records. Business
// errors and missing results yield an empty, non-nil slice.
func unwrapResult[T any](ctx context.Context, d *decoder, raw []byte, spec resultSpec) ([]T, error) {
	var header envelopeHeader
	if err := sonic.Unmarshal(raw, &header); err != nil {
		return nil, &tennis.DecodingError{Record: spec.record, Field: "envelope", Err: err}
	}

	if header.businessError() {
		d.logUpstreamErrors(ctx, spec.record, header.Result)
		return []T{}, nil
	}

	result := bytes.TrimSpace(header.Result)
	if len(result) == 0 || bytes.Equal(result, nullLiteral) {
		if spec.required {
			return nil, &tennis.DecodingError{Record: spec.record, Field: "result"}
		}
		return []T{}, nil
	}

	var items []json.RawMessage
	if err := sonic.Unmarshal(result, &items); err != nil {
		return nil, &tennis.DecodingError{Record: spec.record, Field: "result", Err: err}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		var record T
		if err := sonic.Unmarshal(item, &record); err != nil {
			return nil, &tennis.DecodingError{Record: spec.record, Field: "result", Err: err}
		}
		if err := d.validate.Struct(record); err != nil {
			return nil, decodingErrorFromValidation(spec.record, err)
		}
		out = append(out, record)
	}

	return out, nil
}

func decodingErrorFromValidation(record string, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &tennis.DecodingError{Record: record, Field: fieldErrs[0].Field()}
	}
	return &tennis.DecodingError{Record: record, Field: "result", Err: err}
}

func (d *decoder) logUpstreamErrors(ctx context.Context, record string, result json.RawMessage) {
	var items flexList[upstreamErrorDTO]
	if err := sonic.Unmarshal(result, &items); err != nil {
		return
	}
	for _, item := range items {
		if !item.Msg.Valid && !item.Cod.Valid {
			continue
		}
		d.logger.WarnContext(ctx, "api-tennis reported no data",
			"record", record,
			"code", item.Cod.Value,
			"message", item.Msg.Value,
		)
	}
}
