package api

import "time"

type Configuration struct {
	Env                 string
	AppName             string
	Port                string
	JwtSigningSecret    []byte
	AllowedOrigins      []string
	RequestLoggingLevel string

	DefaultTimeout  time.Duration
	SnapshotTimeout time.Duration
}
