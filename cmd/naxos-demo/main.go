// Command naxos-demo runs a NAXOS key exchange between two in-process
// parties, Alice and Bob, over one or more curves, and prints the agreed
// session keys. It is a demonstration driver only: both parties run in the
// same process, and each party's wire material is handed to the other as
// in-memory byte slices instead of over a network socket.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nax-crypto/naxos-go/curve"
	"github.com/nax-crypto/naxos-go/entropy"
	"github.com/nax-crypto/naxos-go/hash"
	"github.com/nax-crypto/naxos-go/naxos"
)

func main() {
	curvesFlag := flag.String("curves", "192,224,256,384,521", "comma-separated list of curve bit sizes to exercise")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: colorable.NewColorableStdout(), TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(level)

	bitSizes, err := parseCurveList(*curvesFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -curves flag")
	}

	if err := run(bitSizes); err != nil {
		log.Fatal().Err(err).Msg("exchange failed")
	}
}

func parseCurveList(s string) ([]int, error) {
	var out []int
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			tok := s[start:i]
			start = i + 1
			if tok == "" {
				continue
			}
			var bitSize int
			if _, err := fmt.Sscanf(tok, "%d", &bitSize); err != nil {
				return nil, fmt.Errorf("curve token %q: %w", tok, err)
			}
			out = append(out, bitSize)
		}
	}
	return out, nil
}

// run exercises one full NAXOS exchange per requested curve, running
// Alice's and Bob's halves concurrently via an errgroup the way a real
// two-party protocol's two endpoints would run on separate goroutines.
func run(bitSizes []int) error {
	hasher := hash.SHA3{}

	idA := []byte("alice@naxos-demo")
	idB := []byte("bob@naxos-demo")

	for _, bitSize := range bitSizes {
		log.Info().Int("bits", bitSize).Msg("starting exchange")

		c, err := curve.Select(bitSize)
		if err != nil {
			return err
		}

		staticA, err := naxos.GenerateStaticKeyPair(bitSize, entropy.OS)
		if err != nil {
			return fmt.Errorf("alice static key: %w", err)
		}
		staticB, err := naxos.GenerateStaticKeyPair(bitSize, entropy.OS)
		if err != nil {
			return fmt.Errorf("bob static key: %w", err)
		}

		var ephA, ephB *naxos.EphemeralState
		g, _ := errgroup.WithContext(context.Background())
		g.Go(func() error {
			var err error
			ephA, err = naxos.GenerateEphemeralExchange(bitSize, staticA, entropy.OS, hasher)
			return err
		})
		g.Go(func() error {
			var err error
			ephB, err = naxos.GenerateEphemeralExchange(bitSize, staticB, entropy.OS, hasher)
			return err
		})
		if err := g.Wait(); err != nil {
			return fmt.Errorf("ephemeral exchange: %w", err)
		}

		pkAx, pkAy := staticA.PublicBytes()
		pkBx, pkBy := staticB.PublicBytes()
		xx, xy := ephA.PublicBytes()
		yx, yy := ephB.PublicBytes()

		var kA, kB []byte
		g, _ = errgroup.WithContext(context.Background())
		g.Go(func() error {
			var err error
			kA, err = naxos.DeriveSessionKeyInitiator(staticA, ephA, pkBx, pkBy, yx, yy, idA, idB, hasher)
			return err
		})
		g.Go(func() error {
			var err error
			kB, err = naxos.DeriveSessionKeyResponder(staticB, ephB, pkAx, pkAy, xx, xy, idA, idB, hasher)
			return err
		})
		if err := g.Wait(); err != nil {
			return fmt.Errorf("session key derivation: %w", err)
		}

		match := hex.EncodeToString(kA) == hex.EncodeToString(kB)
		log.Info().
			Str("curve", c.Name).
			Str("kA", hex.EncodeToString(kA)).
			Str("kB", hex.EncodeToString(kB)).
			Bool("agree", match).
			Msg("exchange complete")

		if !match {
			return fmt.Errorf("%s: alice and bob disagree on the session key", c.Name)
		}

		ephA.Zeroize()
		ephB.Zeroize()
		staticA.Zeroize()
		staticB.Zeroize()
	}

	return nil
}
