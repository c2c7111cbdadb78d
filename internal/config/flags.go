package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a dealership API address in format [host]:[port]
//	-session-file path of the persisted session file
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-staged-images staged image cap per vehicle form
//	-upload-pause pause between sequential image uploads (e.g., "100ms")
func ParseFlags() *StructuredConfig {
	var apiAddress NetAddress
	var sessionFilePath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var maxStagedImages int
	var uploadPause time.Duration

	flag.Var(&apiAddress, "a", "Dealership API address host:port")
	flag.StringVar(&sessionFilePath, "session-file", "", "Session file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&maxStagedImages, "max-staged-images", 0, "Staged image cap per vehicle form")
	flag.DurationVar(&uploadPause, "upload-pause", 0, "Pause between sequential image uploads")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			Address:        apiAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			FilePath: sessionFilePath,
		},
		Uploads: Uploads{
			MaxStagedImages:  maxStagedImages,
			InterUploadPause: uploadPause,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or the empty
// string when neither field is set.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
