// sipsum prints SipHash checksums of files, in the style of sha1sum. It is a
// thin front end over the siphash package's construction/write/finish
// contract; the hash itself lives entirely in the library.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	cli "gopkg.in/urfave/cli.v1"

	siphash "github.com/lccc-project/lccc-siphash"
)

func main() {
	app := cli.NewApp()
	app.Name = "sipsum"
	app.Usage = "print SipHash checksums of files or standard input"
	app.ArgsUsage = "[files...]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "key, k",
			Usage: "128-bit key as 32 hex characters, little-endian",
			Value: strings.Repeat("0", 2*siphash.KeySize),
		},
		cli.StringFlag{
			Name:  "rounds, r",
			Usage: "round schedule as c,d",
			Value: "2,4",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	builder, err := makeBuilder(ctx.String("key"), ctx.String("rounds"))
	if err != nil {
		return err
	}

	args := ctx.Args()
	if len(args) == 0 {
		return sumOne(builder, os.Stdin, "-", ctx.App.Writer)
	}
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("sipsum: %w", err)
		}
		err = sumOne(builder, f, name, ctx.App.Writer)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func makeBuilder(keyHex, rounds string) (siphash.Builder, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != siphash.KeySize {
		return siphash.Builder{}, fmt.Errorf("sipsum: key must be %d hex characters", 2*siphash.KeySize)
	}

	var c, d int
	if _, err := fmt.Sscanf(rounds, "%d,%d", &c, &d); err != nil {
		return siphash.Builder{}, fmt.Errorf("sipsum: rounds must be of the form c,d: %q", rounds)
	}

	k0 := binary.LittleEndian.Uint64(key)
	k1 := binary.LittleEndian.Uint64(key[8:])
	b, err := siphash.NewBuilderConfig(k0, k1, siphash.Config{
		CompressionRounds:  c,
		FinalizationRounds: d,
	})
	if err != nil {
		return siphash.Builder{}, fmt.Errorf("sipsum: %w", err)
	}
	return b, nil
}

func sumOne(b siphash.Builder, r io.Reader, name string, w io.Writer) error {
	h := b.New()
	if _, err := io.Copy(h, r); err != nil {
		return fmt.Errorf("sipsum: reading %s: %w", name, err)
	}
	v, err := h.Finish()
	if err != nil {
		return err
	}

	var out [siphash.Size]byte
	binary.LittleEndian.PutUint64(out[:], v)
	fmt.Fprintf(w, "%s  %s\n", hex.EncodeToString(out[:]), name)
	return nil
}
