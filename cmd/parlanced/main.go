/*
Parlanced starts a Parlance server and begins listening for new connections.

Usage:

	parlanced [flags]
	parlanced [flags] -l [[ADDRESS]:PORT]

Once started, the Parlance server will listen for HTTP requests and respond to
them using REST protocol. By default, it will listen on localhost:8080. This
can be changed with the --listen/-l flag (or config via environment var). The
flag argument must be either a full address with port, such as
"192.168.0.2:6001", or just the port preceeded by a colon, such as ":6001".

The flags are:

	-v, --version
		Give the current version of the Parlance server and then exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, will default to the value of environment
		variable PARLANCE_LISTEN_ADDRESS, and if that is not given, will
		default to localhost:8080.

	--db DRIVER[:PARAMS]
		Use the given DB connection string. DRIVER must be one of the
		following: inmem, sqlite. inmem has no further params. sqlite needs
		the path to the data directory such as sqlite:path/to/db_dir. If not
		given, will default to the value of environment variable
		PARLANCE_DATABASE. If no DB driver is specified or an empty one is
		given, an in-memory database is automatically selected.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/maybell/parlance/internal/version"
	"github.com/maybell/parlance/server"
)

const (
	EnvListen = "PARLANCE_LISTEN_ADDRESS"
	EnvDB     = "PARLANCE_DATABASE"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of Parlance server and then exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagDB      = pflag.String("db", "", "Use the given DB connection string.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (Parlance v%s)\n", version.ServerCurrent, version.Current)
		return
	}

	args := pflag.Args()

	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	// get address info
	port := 0
	addr := ""
	listenAddr := os.Getenv(EnvListen)
	if pflag.Lookup("listen").Changed {
		listenAddr = *flagListen
	}
	if listenAddr != "" {
		bindParts := strings.SplitN(listenAddr, ":", 2)
		if len(bindParts) != 2 {
			fmt.Fprintf(os.Stderr, "Listen address is not in ADDRESS:PORT or :PORT format.\nDo -h for help.\n")
			os.Exit(1)
		}

		var err error

		addr = bindParts[0]
		port, err = strconv.Atoi(bindParts[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%q is not a valid port number.\nDo -h for help.\n", bindParts[1])
			os.Exit(1)
		}
	}

	// look at db connection string
	dbConnStr := os.Getenv(EnvDB)
	if pflag.Lookup("db").Changed {
		dbConnStr = *flagDB
	}

	dbCfg, err := server.ParseDBConnString(dbConnStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Not a valid DB string: %q\nDo -h for help.\n", dbConnStr)
		os.Exit(1)
	}
	if dbCfg.Type == server.DatabaseSQLite {
		err := os.MkdirAll(dbCfg.DataDir, 0770)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not build data directory: %s\n", err)
			os.Exit(1)
		}
	}

	// configuration complete, initialize the server
	ps, err := server.New(dbCfg)
	if err != nil {
		log.Fatalf("FATAL could not start server: %s", err.Error())
	}
	log.Printf("DEBUG Server initialized")

	// okay, now actually launch it
	log.Printf("INFO  Starting Parlance server %s...", version.ServerCurrent)
	ps.ServeForever(addr, port)
}
