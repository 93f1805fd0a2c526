/*
 * Logging - unit tests.
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
package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_Configure(t *testing.T) {
	type testCase struct {
		name     string
		input    Options
		expected struct {
			level     log.Level
			formatter log.Formatter
			err       string
		}
	}

	run := func(t *testing.T, tc testCase) {
		defer log.SetLevel(log.InfoLevel)
		defer log.SetFormatter(&log.TextFormatter{})
		exp := tc.expected

		err := Configure(tc.input)

		if exp.err != "" {
			assert.EqualError(t, err, exp.err)
			return
		}
		assert.NoError(t, err)
		assert.Equal(t, exp.level, log.GetLevel())
		assert.IsType(t, exp.formatter, log.StandardLogger().Formatter)
	}

	testCases := []testCase{
		{
			name:  "text info",
			input: Options{Level: "info", Format: "text"},
			expected: struct {
				level     log.Level
				formatter log.Formatter
				err       string
			}{level: log.InfoLevel, formatter: &log.TextFormatter{}},
		},
		{
			name:  "json debug",
			input: Options{Level: "debug", Format: "json"},
			expected: struct {
				level     log.Level
				formatter log.Formatter
				err       string
			}{level: log.DebugLevel, formatter: &log.JSONFormatter{}},
		},
		{
			name:  "bad level",
			input: Options{Level: "chatty", Format: "text"},
			expected: struct {
				level     log.Level
				formatter log.Formatter
				err       string
			}{err: `not a valid logrus Level: "chatty"`},
		},
		{
			name:  "bad format",
			input: Options{Level: "info", Format: "xml"},
			expected: struct {
				level     log.Level
				formatter log.Formatter
				err       string
			}{err: `unsupported log format: "xml"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}
