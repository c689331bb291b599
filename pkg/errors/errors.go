package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error codes
const (
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeResourceNotFound = "RESOURCE_NOT_FOUND"
	CodeDataSource       = "DATA_SOURCE_ERROR"
	CodeRender           = "RENDER_ERROR"
	CodeHashStore        = "HASH_STORE_ERROR"
	CodeNotify           = "NOTIFY_ERROR"
)

type TrendsError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *TrendsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TrendsError) Unwrap() error {
	return e.Cause
}

func NewTrendsError(message, code string, context map[string]any) *TrendsError {
	return &TrendsError{
		Message: message,
		Code:    code,
		Context: context,
	}
}

func (e *TrendsError) WithCause(cause error) *TrendsError {
	e.Cause = cause
	return e
}

// InvalidArgumentError reports a value of the wrong shape handed to a setter
// or constructor. It is never swallowed.
type InvalidArgumentError struct {
	*TrendsError
	Field string
	Value interface{}
}

func NewInvalidArgumentError(message, field string, value interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{
		TrendsError: NewTrendsError(message, CodeInvalidArgument, map[string]any{
			"field": field,
			"value": value,
		}),
		Field: field,
		Value: value,
	}
}

// ResourceNotFoundError reports a missing SQL or template resource.
type ResourceNotFoundError struct {
	*TrendsError
	Kind       string
	Name       string
	Candidates []string
}

func NewResourceNotFoundError(kind, name string, candidates []string) *ResourceNotFoundError {
	msg := fmt.Sprintf("%s resource %q not found", kind, name)
	if len(candidates) > 0 {
		msg = fmt.Sprintf("%s (tried %s)", msg, strings.Join(candidates, ", "))
	}
	return &ResourceNotFoundError{
		TrendsError: NewTrendsError(msg, CodeResourceNotFound, map[string]any{
			"kind": kind,
			"name": name,
		}),
		Kind:       kind,
		Name:       name,
		Candidates: candidates,
	}
}

type DataSourceError struct {
	*TrendsError
	Query string
}

func NewDataSourceError(message, query string, cause error) *DataSourceError {
	return &DataSourceError{
		TrendsError: NewTrendsError(message, CodeDataSource, map[string]any{
			"query": query,
		}).WithCause(cause),
		Query: query,
	}
}

type RenderError struct {
	*TrendsError
	Publisher string
	Category  string
}

func NewRenderError(message, publisher, category string, cause error) *RenderError {
	return &RenderError{
		TrendsError: NewTrendsError(message, CodeRender, map[string]any{
			"publisher": publisher,
			"category":  category,
		}).WithCause(cause),
		Publisher: publisher,
		Category:  category,
	}
}

type HashStoreError struct {
	*TrendsError
	Operation string
	Location  string
}

func NewHashStoreError(message, operation, location string, cause error) *HashStoreError {
	return &HashStoreError{
		TrendsError: NewTrendsError(message, CodeHashStore, map[string]any{
			"operation": operation,
			"location":  location,
		}).WithCause(cause),
		Operation: operation,
		Location:  location,
	}
}

// NotifyError aggregates the observers that failed during one notify cycle.
type NotifyError struct {
	*TrendsError
	Failed []string
}

func NewNotifyError(failed []string, causes []error) *NotifyError {
	return &NotifyError{
		TrendsError: NewTrendsError(fmt.Sprintf("%d publisher(s) failed", len(failed)), CodeNotify, map[string]any{
			"failed": failed,
		}).WithCause(stderrors.Join(causes...)),
		Failed: failed,
	}
}

func IsInvalidArgument(err error) bool {
	var e *InvalidArgumentError
	return stderrors.As(err, &e)
}

func IsResourceNotFound(err error) bool {
	var e *ResourceNotFoundError
	return stderrors.As(err, &e)
}

func IsDataSource(err error) bool {
	var e *DataSourceError
	return stderrors.As(err, &e)
}

func IsRender(err error) bool {
	var e *RenderError
	return stderrors.As(err, &e)
}

func IsNotify(err error) bool {
	var e *NotifyError
	return stderrors.As(err, &e)
}

func (e *TrendsError) ErrorCode() string {
	return e.Code
}

// Code returns the code of the first typed error in err's chain, or "" when
// there is none.
func Code(err error) string {
	var c interface{ ErrorCode() string }
	if stderrors.As(err, &c) {
		return c.ErrorCode()
	}
	return ""
}
