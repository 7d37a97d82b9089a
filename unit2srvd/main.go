// Copyright 2026 The Unit2srv Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use file except in compliance with the License.
// You may obtain a copy of the license at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command unit2srvd serves unit file conversions over HTTP.
//
// The flags are
//
//	-a <address>	- listen address, default is 127.0.0.1:8322
//	-c <file>	- TOML configuration file
//	-q		- do not log conversion warnings
//
// The configuration file may set "listen" and "quiet".  Flags given on
// the command line take precedence over the file.
//
// Endpoints are
//
//	GET  /keys                     - list the unit keys that are converted
//	POST /convert?target=<name>    - convert the unit file in the body
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/unit2srv/unit2srv/rest"
)

type config struct {
	Listen string `toml:"listen"`
	Quiet  bool   `toml:"quiet"`
}

var addr string = "127.0.0.1:8322"
var cfgFile string = ""
var quiet bool = false

// loadConfig overlays cfg with the contents of the named file.
func loadConfig(path string, cfg *config) error {
	md, e := toml.DecodeFile(path, cfg)
	if e != nil {
		return e
	}
	for _, k := range md.Undecoded() {
		log.Printf("Ignoring unknown setting %s in %s", k, path)
	}
	return nil
}

// resolveConfig merges the defaults, the configuration file and the
// flags that were set explicitly, in increasing order of precedence.
func resolveConfig(fs *flag.FlagSet) (*config, error) {
	cfg := &config{Listen: addr, Quiet: quiet}
	if cfgFile != "" {
		if e := loadConfig(cfgFile, cfg); e != nil {
			return nil, e
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.Listen = addr
		case "q":
			cfg.Quiet = quiet
		}
	})
	return cfg, nil
}

func main() {
	flag.StringVar(&addr, "a", addr, "listen address")
	flag.StringVar(&cfgFile, "c", cfgFile, "configuration file")
	flag.BoolVar(&quiet, "q", quiet, "do not log conversion warnings")
	flag.Parse()

	cfg, e := resolveConfig(flag.CommandLine)
	if e != nil {
		log.Fatalf("Failed to load configuration %s: %v", cfgFile, e)
	}

	var logger *log.Logger
	if !cfg.Quiet {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: rest.NewHandler(logger),
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		if e := srv.ListenAndServe(); e != http.ErrServerClosed {
			log.Fatal(e)
		}
	}()
	log.Printf("Listening on %s", cfg.Listen)

	// Wait for a termination signal, and shutdown cleanly if we get it.
	<-sigs
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if e := srv.Shutdown(ctx); e != nil {
		log.Printf("Shutdown: %v", e)
	}
}
