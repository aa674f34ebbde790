// Package generate produces random identifiers and passwords.
package generate
