/*
 * Validation - request schema validation.
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
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/miekg/dns"

	"dns-tenant-gateway/internal/apierr"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// validRRType accepts the record types known to the DNS library, written in
// upper case as Route 53 expects them.
func validRRType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value != strings.ToUpper(value) {
		return false
	}
	_, ok := dns.StringToType[value]
	return ok
}

// maxBytes limits the length of a string in bytes. The max rule of the
// validator counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// jsonFieldName reports fields by their JSON name so that violations match
// the request body.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Validator returns the shared validator. validator.Validate caches struct
// metadata and is safe for concurrent use.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("rrtype", validRRType); err != nil {
			panic(err)
		}
		if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
			panic(err)
		}
		instance = v
	})
	return instance
}

// Struct validates s. On failure it returns an apierr ValidationFailure with
// one violation per offending field.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	return apierr.Validation("Invalid Body", Violations(err)...)
}

// Violations turns a validator error into human readable messages.
func Violations(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	violations := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, describe(fe))
	}
	return violations
}

// describe returns the message for a single field error.
func describe(fe validator.FieldError) string {
	field := strings.SplitN(fe.Namespace(), ".", 2)
	name := fe.Namespace()
	if len(field) == 2 {
		name = field[1]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "required_without":
		return fmt.Sprintf("%s is required when %s is not set", name, fe.Param())
	case "rrtype":
		return fmt.Sprintf("%s: %q is not a valid record type", name, fe.Value())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", name, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes long", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s)", name, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %q rule", name, fe.Tag())
	}
}
