// Package info reports where dotcal reads its config and keeps its cache.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/dotcal/pkg/store"
)

type Info struct {
	Config store.Config
	Cache  store.Cache
	Stdout io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Stdout
	if out == nil {
		out = os.Stdout
	}

	if override := os.Getenv("DOTCAL_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "DOTCAL_CONFIG_PATH found on env, using", override)
	} else {
		fmt.Fprintln(out, "DOTCAL_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if f := n.Config.File(); f != "" {
		fmt.Fprintln(out, "Config.file:", f)
	} else {
		fmt.Fprintln(out, "Config.file: none, using defaults")
	}
	fmt.Fprintln(out, "Serve.addr:", n.Config.Addr())
	if base := n.Config.BaseURL(); base != "" {
		fmt.Fprintln(out, "Serve.baseURL:", base)
	}

	path := n.Config.CachePath()
	if path == "" {
		fmt.Fprintln(out, "Cache: disabled")
		return nil
	}
	fmt.Fprintln(out, "Cache.path:", path)

	if n.Cache == nil {
		n.Cache = store.OpenCache(path)
	}
	days := map[string]int{}
	total := 0
	for _, k := range n.Cache.Keys(ctx) {
		days[k.Day.String()]++
		total++
	}
	fmt.Fprintf(out, "Cache.entries: %d across %d days\n", total, len(days))
	return nil
}
