package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-profile-ownership-check require a matching session on GET /profile
//	-oracle-api-key generative model API key
//	-oracle-model generative model name
//	-oracle-timeout generative call timeout
//	-google-client-id / -google-client-secret / -google-redirect-url
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("career-guide", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout, oracleTimeout time.Duration
	var profileOwnershipCheck bool
	var oracleAPIKey, oracleModel string
	var googleClientID, googleClientSecret, googleRedirectURL string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&profileOwnershipCheck, "profile-ownership-check", false, "Require a matching session on GET /profile")
	fs.StringVar(&oracleAPIKey, "oracle-api-key", "", "Generative model API key")
	fs.StringVar(&oracleModel, "oracle-model", "", "Generative model name")
	fs.DurationVar(&oracleTimeout, "oracle-timeout", 0, "Generative call timeout")
	fs.StringVar(&googleClientID, "google-client-id", "", "Google OAuth client id")
	fs.StringVar(&googleClientSecret, "google-client-secret", "", "Google OAuth client secret")
	fs.StringVar(&googleRedirectURL, "google-redirect-url", "", "Google OAuth redirect URL")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:           serverAddress.String(),
			RequestTimeout:        requestTimeout,
			ProfileOwnershipCheck: profileOwnershipCheck,
		},
		OAuth: OAuth{
			Google: Google{
				ClientID:     googleClientID,
				ClientSecret: googleClientSecret,
				RedirectURL:  googleRedirectURL,
			},
		},
		Oracle: Oracle{
			APIKey:  oracleAPIKey,
			Model:   oracleModel,
			Timeout: oracleTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
