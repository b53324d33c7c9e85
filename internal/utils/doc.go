// Package utils holds small helpers shared by the HTTP layer.
package utils
