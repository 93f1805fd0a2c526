/*
 * API errors - error taxonomy and HTTP mapping.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the failure.
type Kind int

const (
	KindInternal Kind = iota
	KindMissingToken
	KindInvalidToken
	KindUnknownTenant
	KindInvalidCredentials
	KindValidation
	KindInvalidZone
	KindEmptyImport
	KindDuplicateTenant
	KindTenantNotFound
	KindProvider
)

var kindNames = map[Kind]string{
	KindInternal:           "InternalFailure",
	KindMissingToken:       "MissingToken",
	KindInvalidToken:       "InvalidToken",
	KindUnknownTenant:      "UnknownTenant",
	KindInvalidCredentials: "InvalidCredentials",
	KindValidation:         "ValidationFailure",
	KindInvalidZone:        "InvalidZone",
	KindEmptyImport:        "EmptyImport",
	KindDuplicateTenant:    "DuplicateTenant",
	KindTenantNotFound:     "TenantNotFound",
	KindProvider:           "ProviderFailure",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Class groups kinds by origin.
type Class int

const (
	// ClassRejection is a request refused before any provider call.
	ClassRejection Class = iota
	// ClassProvider is a failure reported by the DNS provider.
	ClassProvider
	// ClassInternal is a local failure.
	ClassInternal
)

// Error is the error type returned by the gateway components.
type Error struct {
	Kind       Kind
	Code       int
	Message    string
	Violations []string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Class returns the class of the error.
func (e *Error) Class() Class {
	switch e.Kind {
	case KindProvider:
		return ClassProvider
	case KindInternal:
		return ClassInternal
	default:
		return ClassRejection
	}
}

// Status returns the HTTP status code for the error.
func (e *Error) Status() int {
	switch e.Kind {
	case KindMissingToken, KindInvalidToken:
		return http.StatusUnauthorized
	case KindUnknownTenant, KindInvalidCredentials:
		return http.StatusForbidden
	case KindValidation, KindInvalidZone, KindEmptyImport:
		return http.StatusBadRequest
	case KindDuplicateTenant:
		return http.StatusConflict
	case KindTenantNotFound:
		return http.StatusNotFound
	case KindProvider:
		if e.Code >= 400 && e.Code <= 599 {
			return e.Code
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Sentinels usable with errors.Is.
var (
	ErrMissingToken       = &Error{Kind: KindMissingToken}
	ErrInvalidToken       = &Error{Kind: KindInvalidToken}
	ErrUnknownTenant      = &Error{Kind: KindUnknownTenant}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrValidation         = &Error{Kind: KindValidation}
	ErrInvalidZone        = &Error{Kind: KindInvalidZone}
	ErrEmptyImport        = &Error{Kind: KindEmptyImport}
	ErrDuplicateTenant    = &Error{Kind: KindDuplicateTenant}
	ErrTenantNotFound     = &Error{Kind: KindTenantNotFound}
	ErrProvider           = &Error{Kind: KindProvider}
	ErrInternal           = &Error{Kind: KindInternal}
)

// MissingToken builds a MissingToken error.
func MissingToken() *Error {
	return &Error{Kind: KindMissingToken, Message: "Token not found"}
}

// InvalidToken builds an InvalidToken error.
func InvalidToken(err error) *Error {
	return &Error{Kind: KindInvalidToken, Message: "Invalid Token", Err: err}
}

// UnknownTenant builds an UnknownTenant error.
func UnknownTenant(err error) *Error {
	return &Error{Kind: KindUnknownTenant, Message: "User not found", Err: err}
}

// InvalidCredentials builds an InvalidCredentials error.
func InvalidCredentials(err error) *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "Invalid AWS Credentials", Err: err}
}

// Validation builds a ValidationFailure error with the list of violations.
func Validation(message string, violations ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Violations: violations}
}

// InvalidZone builds an InvalidZone error.
func InvalidZone() *Error {
	return &Error{Kind: KindInvalidZone, Message: "Invalid Hosted Zone Id"}
}

// EmptyImport builds an EmptyImport error.
func EmptyImport() *Error {
	return &Error{Kind: KindEmptyImport, Message: "Nothing to import"}
}

// DuplicateTenant builds a DuplicateTenant error.
func DuplicateTenant(err error) *Error {
	return &Error{Kind: KindDuplicateTenant, Message: "Email already exists", Err: err}
}

// TenantNotFound builds a TenantNotFound error.
func TenantNotFound(err error) *Error {
	return &Error{Kind: KindTenantNotFound, Message: "User not found", Err: err}
}

// Provider builds a ProviderFailure error.
func Provider(code int, message string, err error) *Error {
	return &Error{Kind: KindProvider, Code: code, Message: message, Err: err}
}

// Internal builds an InternalFailure error.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal Server Error", Err: err}
}

// statusCoder is implemented by transport errors carrying an HTTP status
// (for example the AWS SDK ResponseError).
type statusCoder interface {
	HTTPStatusCode() int
}

// messager is implemented by API errors carrying the provider message (for
// example smithy.APIError).
type messager interface {
	ErrorMessage() string
}

// Map normalizes any error into an *Error. Errors that are already *Error are
// returned as they are. Errors carrying an HTTP status become provider
// failures; everything else is an internal failure.
func Map(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	var sc statusCoder
	if errors.As(err, &sc) && sc.HTTPStatusCode() != 0 {
		message := err.Error()
		var m messager
		if errors.As(err, &m) && m.ErrorMessage() != "" {
			message = m.ErrorMessage()
		}
		return Provider(sc.HTTPStatusCode(), message, err)
	}
	return Internal(err)
}
