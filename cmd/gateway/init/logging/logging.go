/*
 * Logging - logger setup.
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
	"fmt"
	"os"

	"github.com/caarlos0/env/v8"
	log "github.com/sirupsen/logrus"
)

// Options are the logging settings.
type Options struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Configure applies the options to the standard logger.
func Configure(opts Options) error {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return err
	}
	switch opts.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unsupported log format: %q", opts.Format)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)
	return nil
}

// Init configures the logger from the environment.
func Init() {
	opts := Options{}
	if err := env.Parse(&opts); err != nil {
		log.Fatalf("Error reading logging configuration: %v", err)
	}
	if err := Configure(opts); err != nil {
		log.Fatalf("Error configuring the logger: %v", err)
	}
}
