package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tetherline/devwire/protocol"
	"github.com/tetherline/devwire/wire"
)

var (
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
	kindStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

func main() {
	var (
		inFile      = flag.String("in", "", "Input file with hex or raw frame bytes ('-' for stdin)")
		hexArg      = flag.String("hex", "", "Frame bytes as a hex string")
		msgName     = flag.String("msg", "", "Decode against a named message type")
		labelsFile  = flag.String("labels", "", "TOML file naming field ids for raw dumps")
		list        = flag.Bool("list", false, "List known message types and exit")
		verbose     = flag.Bool("v", false, "Log skipped unknown fields")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *list {
		for _, name := range protocol.Names() {
			fmt.Println(name)
		}
		return
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		wire.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	data, err := readFrame(*inFile, *hexArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(data) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: wiredump -in <file> [-msg name] [-labels file.toml]")
		fmt.Fprintln(os.Stderr, "       wiredump -hex 08ac0212026869 [-msg name]")
		fmt.Fprintln(os.Stderr, "       wiredump -i  (interactive mode)")
		os.Exit(1)
	}

	if *msgName != "" {
		if err := dumpMessage(data, *msgName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	labels, err := loadLabels(*labelsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := dumpRaw(os.Stdout, data, labels, term.IsTerminal(int(os.Stdout.Fd()))); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readFrame loads frame bytes from a file, stdin, or a hex flag. File input
// may be raw bytes or hex text; hex is assumed when every byte is printable.
func readFrame(inFile, hexArg string) ([]byte, error) {
	if hexArg != "" {
		return decodeHex(hexArg)
	}
	if inFile == "" {
		return nil, nil
	}

	var raw []byte
	var err error
	if inFile == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(inFile)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if looksLikeHex(raw) {
		return decodeHex(string(raw))
	}
	return raw, nil
}

func looksLikeHex(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	for _, b := range raw {
		switch {
		case b >= '0' && b <= '9', b >= 'a' && b <= 'f', b >= 'A' && b <= 'F':
		case b == ' ', b == '\n', b == '\r', b == '\t':
		default:
			return false
		}
	}
	return true
}

func decodeHex(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, s)
	data, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return data, nil
}

// labelsConfig is the TOML layout for naming field ids in raw dumps:
//
//	[fields]
//	1 = "client_info"
//	2 = "api_version_major"
type labelsConfig struct {
	Fields map[string]string `toml:"fields"`
}

func loadLabels(path string) (map[uint32]string, error) {
	if path == "" {
		return nil, nil
	}
	var cfg labelsConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}
	labels := make(map[uint32]string, len(cfg.Fields))
	for key, name := range cfg.Fields {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("label key %q: %w", key, err)
		}
		labels[uint32(id)] = name
	}
	return labels, nil
}

// dumpMessage decodes data against a registered message type and prints the
// populated fields.
func dumpMessage(data []byte, name string) error {
	m, err := protocol.New(name)
	if err != nil {
		return err
	}
	if err := m.Decode(data); err != nil {
		return err
	}
	fmt.Printf("%s (%d bytes)\n", name, len(data))
	fmt.Printf("%+v\n", m)
	return nil
}

// dumpRaw walks the frame record by record without a schema, printing field
// id, wire kind, and value. The same tag/length primitives the decoder uses
// drive the walk, so anything dumpRaw accepts the decoder accepts too.
func dumpRaw(out io.Writer, data []byte, labels map[uint32]string, styled bool) error {
	off := 0
	for off < len(data) {
		tag, n, err := wire.ReadUVarint(data[off:])
		if err != nil {
			return err
		}
		field, kind := wire.SplitTag(tag)
		if field == 0 || !kind.Valid() {
			return fmt.Errorf("invalid tag at offset %d", off)
		}
		recStart := off
		off += n

		var value string
		switch kind {
		case wire.KindVarint:
			v, n, err := wire.ReadUVarint(data[off:])
			if err != nil {
				return err
			}
			off += n
			value = fmt.Sprintf("%d (sint %d)", v, wire.ZigZagDecode(v))
		case wire.KindFixed32:
			v, err := wire.ReadFixed32(data[off:])
			if err != nil {
				return err
			}
			off += 4
			value = fmt.Sprintf("%d (float %g)", v, math.Float32frombits(v))
		case wire.KindFixed64:
			v, err := wire.ReadFixed64(data[off:])
			if err != nil {
				return err
			}
			off += 8
			value = fmt.Sprintf("%d", v)
		case wire.KindLengthDelimited:
			length, n, err := wire.ReadUVarint(data[off:])
			if err != nil {
				return err
			}
			off += n
			if length > uint64(len(data)-off) {
				return fmt.Errorf("declared length %d exceeds remaining %d bytes", length, len(data)-off)
			}
			view := wire.View(data[off : off+int(length)])
			off += int(length)
			value = formatView(view)
		}

		name := labels[field]
		if name == "" {
			name = fmt.Sprintf("field %d", field)
		}

		if styled {
			fmt.Fprintf(out, "%s  %s %s = %s\n",
				dimStyle.Render(fmt.Sprintf("%04x", recStart)),
				fieldStyle.Render(name),
				kindStyle.Render("("+kind.String()+")"),
				valueStyle.Render(value))
		} else {
			fmt.Fprintf(out, "%04x  %s (%s) = %s\n", recStart, name, kind, value)
		}
	}
	return nil
}

func formatView(v wire.View) string {
	printable := true
	for _, b := range v {
		if b < 0x20 || b > 0x7e {
			printable = false
			break
		}
	}
	if printable {
		return strconv.Quote(v.BorrowString())
	}
	return fmt.Sprintf("%d bytes: % x", v.Len(), v.Bytes())
}
