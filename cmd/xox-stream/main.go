// Command xox-stream writes a pseudo-random byte stream to stdout, e.g. for piping into
// statistical test suites such as PractRand or TestU01.
package main

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/TomTonic/xox"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

const blockSize = 4096

type args struct {
	Seed   string `name:"seed" short:"s" default:"autovivification" env:"XOX_SEED" help:"16 byte seed, used verbatim as little-endian state"`
	System bool   `name:"system" env:"XOX_SYSTEM_SEED" help:"seed from the operating system's entropy source instead of --seed"`
	Count  int64  `name:"count" short:"n" default:"0" env:"XOX_COUNT" help:"number of bytes to write, 0 for an endless stream"`
}

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading dotenv failed: %s", err)
	}
}

func main() {
	var a args
	_ = kong.Parse(&a, kong.Description("Write a pseudo-random byte stream to stdout."))

	g, err := generator(a)
	if err != nil {
		log.Fatalln(err)
	}

	// without this the runtime kills the process on a write to a closed stdout pipe
	signal.Ignore(syscall.SIGPIPE)
	if err := endOfStream(stream(os.Stdout, &g, a.Count)); err != nil {
		log.Fatalf("writing stream failed: %s", err)
	}
}

// endOfStream drops the error of a reader that went away, which is how an endless stream
// normally ends.
func endOfStream(err error) error {
	if errors.Is(err, syscall.EPIPE) {
		return nil
	}
	return err
}

func generator(a args) (xox.Rng, error) {
	if a.System {
		seed, err := xox.SystemSeed()
		if err != nil {
			return xox.Rng{}, err
		}
		return xox.FromSeed(seed), nil
	}
	if len(a.Seed) != 16 {
		return xox.Rng{}, errors.New("seed must be exactly 16 bytes long")
	}
	return xox.FromSeed([16]byte([]byte(a.Seed))), nil
}

// stream writes count bytes produced by g to w, or writes until w fails if count <= 0.
// Blocks are a multiple of 8 bytes long, so the output is the plain concatenation of
// little-endian outputs regardless of the block size.
func stream(w io.Writer, g *xox.Rng, count int64) error {
	block := make([]byte, blockSize)
	endless := count <= 0
	for endless || count > 0 {
		b := block
		if !endless && count < int64(len(b)) {
			b = b[:count]
		}
		g.Fill(b)
		if _, err := w.Write(b); err != nil {
			return err
		}
		if !endless {
			count -= int64(len(b))
		}
	}
	return nil
}
