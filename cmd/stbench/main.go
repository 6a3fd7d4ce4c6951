// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Command stbench builds suffix trees over random input and reports
// construction time and heap growth.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-uuid"
	"go.uber.org/zap"

	suffixtree "github.com/absolutelightning/go-suffix-tree"
)

type result struct {
	size    int
	elapsed time.Duration
	heap    uint64
	nodes   int
}

func randomSequence(rnd *rand.Rand, alphabet []byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return out
}

func uuidSequences(total int) ([][]byte, error) {
	var out [][]byte
	for n := 0; n < total; {
		id, err := uuid.GenerateUUID()
		if err != nil {
			return nil, err
		}
		out = append(out, []byte(id))
		n += len(id)
	}
	return out, nil
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad size %q", f)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func run(log *zap.Logger, inputs [][]byte, validate bool) (result, error) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	total := 0
	for _, in := range inputs {
		total += len(in)
	}

	start := time.Now()
	st := suffixtree.New[byte](suffixtree.WithLogger(log), suffixtree.WithCapacity(total))
	for _, in := range inputs {
		if _, err := st.AddString(in); err != nil {
			return result{}, err
		}
	}
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)
	if validate {
		if err := st.Validate(); err != nil {
			return result{}, err
		}
	}
	runtime.KeepAlive(st)

	return result{
		size:    total,
		elapsed: elapsed,
		heap:    after.TotalAlloc - before.TotalAlloc,
		nodes:   st.Nodes(),
	}, nil
}

func _main() error {
	var (
		alphabet string
		sizes    string
		seed     int64
		useUUID  bool
		validate bool
		verbose  bool
	)
	flag.StringVar(&alphabet, "alphabet", "abc", "symbols random input is drawn from")
	flag.StringVar(&sizes, "sizes", "5,10,100,1000,10000,100000,1000000", "comma separated input sizes")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	flag.BoolVar(&useUUID, "uuid", false, "index many uuid strings instead of one random string")
	flag.BoolVar(&validate, "validate", true, "validate each tree after construction")
	flag.BoolVar(&verbose, "v", false, "log every indexed sequence")
	flag.Parse()

	if alphabet == "" {
		return fmt.Errorf("empty alphabet")
	}
	ns, err := parseSizes(sizes)
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if verbose {
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer log.Sync()
	}

	rnd := rand.New(rand.NewSource(seed))
	for _, n := range ns {
		var inputs [][]byte
		if useUUID {
			if inputs, err = uuidSequences(n); err != nil {
				return err
			}
		} else {
			inputs = [][]byte{randomSequence(rnd, []byte(alphabet), n)}
		}

		res, err := run(log, inputs, validate)
		if err != nil {
			return fmt.Errorf("size %d: %w", n, err)
		}
		fmt.Printf("%d\t%d nodes\t%s\t%d bytes allocated\n", res.size, res.nodes, res.elapsed, res.heap)
	}
	return nil
}

func main() {
	if err := _main(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
