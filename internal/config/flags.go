package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// nodeList collects repeated -node flags.
type nodeList []string

func (n *nodeList) String() string { return strings.Join(*n, ",") }

func (n *nodeList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*n = append(*n, part)
		}
	}
	return nil
}

// ParseFlags parses the server flags from os.Args.
//
// Flags:
//
//	-a               http server address host:port
//	-grpc-address    grpc server address host:port
//	-d               database DSN
//	-c / -config     json or toml config file
//	-token-sign-key  token signing key
//	-token-issuer    token issuer
//	-token-duration  token lifetime (e.g. "24h")
//	-request-timeout request timeout (e.g. "60s")
//	-network         network id (mainnet, testnet3, regtest, simnet, signet)
//	-force-node      forced node url
//	-node            resolver node url, repeatable or comma separated
//	-rpc-user        node rpc user
//	-rpc-password    node rpc password
//	-fee-rate        fee rate in subunits per vbyte
//	-idle-timeout    close sessions idle for this long
//	-log-level       zerolog level
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(newConfigBuilder().args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("wallet-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress, grpcServerAddress NetAddress
		databaseDSN                      string
		configPath                       string
		tokenSignKey, tokenIssuer        string
		tokenDuration, requestTimeout    time.Duration
		networkID, forcedNode            string
		nodes                            nodeList
		rpcUser, rpcPassword             string
		feeRate                          int64
		idleTimeout                      time.Duration
		logLevel                         string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path (json or toml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 60s)")
	fs.StringVar(&networkID, "network", "", "Network id")
	fs.StringVar(&forcedNode, "force-node", "", "Forced node url")
	fs.Var(&nodes, "node", "Resolver node url (repeatable)")
	fs.StringVar(&rpcUser, "rpc-user", "", "Node rpc user")
	fs.StringVar(&rpcPassword, "rpc-password", "", "Node rpc password")
	fs.Int64Var(&feeRate, "fee-rate", 0, "Fee rate, subunits per vbyte")
	fs.DurationVar(&idleTimeout, "idle-timeout", 0, "Idle session timeout")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Network: Network{
			ID:            networkID,
			ForcedNodeURL: forcedNode,
			Nodes:         nodes,
			RPCUser:       rpcUser,
			RPCPassword:   rpcPassword,
			FeeRate:       feeRate,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:  Workers{IdleTimeout: idleTimeout},
		FilePath: configPath,
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
