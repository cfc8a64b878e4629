package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "client.history_limit")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateClient()...)
	errors = append(errors, c.validateHost()...)

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateClient() []ValidationError {
	var errors []ValidationError

	if c.Client.OwnerID == "" {
		errors = append(errors, ValidationError{
			Field:   "client.owner_id",
			Value:   c.Client.OwnerID,
			Message: "must not be empty",
		})
	}

	if c.Client.HistoryLimit < 1 {
		errors = append(errors, ValidationError{
			Field:   "client.history_limit",
			Value:   c.Client.HistoryLimit,
			Message: "must be at least 1",
		})
	}

	return errors
}

func (c *Config) validateHost() []ValidationError {
	var errors []ValidationError

	if c.Host.NavigateIntervalMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "host.navigate_interval_ms",
			Value:   c.Host.NavigateIntervalMs,
			Message: "must not be negative",
		})
	}

	if c.Host.Cycles < 1 {
		errors = append(errors, ValidationError{
			Field:   "host.cycles",
			Value:   c.Host.Cycles,
			Message: "must be at least 1",
		})
	}

	seen := make(map[string]bool)
	for i, page := range c.Host.Pages {
		prefix := fmt.Sprintf("host.pages[%d]", i)

		if page.ID == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".id",
				Value:   page.ID,
				Message: "must not be empty",
			})
		} else if seen[page.ID] {
			errors = append(errors, ValidationError{
				Field:   prefix + ".id",
				Value:   page.ID,
				Message: "duplicates an earlier page id",
			})
		}
		seen[page.ID] = true

		if page.Name == "" {
			errors = append(errors, ValidationError{
				Field:   prefix + ".name",
				Value:   page.Name,
				Message: "must not be empty",
			})
		}

		if !strings.HasPrefix(page.Route, "/") {
			errors = append(errors, ValidationError{
				Field:   prefix + ".route",
				Value:   page.Route,
				Message: "must be a URL path starting with '/'",
			})
		}
	}

	return errors
}
