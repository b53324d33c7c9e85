package main

import "errors"

var errUnexpectedHealth = errors.New("unexpected health status")
