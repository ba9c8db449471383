package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bitmemlabs/bitmem"
	"github.com/bitmemlabs/bitmem/endian"
	"github.com/bitmemlabs/bitmem/memory"
)

var (
	hexInput  string
	size      int
	dump      bool
	analyze   bool
	readType  string
	offset    int
	orderName string

	logLevel zapcore.Level
)

type analysis struct {
	Size        int
	BitCapacity int
	SetBits     int
	FirstSetBit string
}

func parseFlags() {
	flag.StringVar(&hexInput, "hex", "", "memory content as a hex string (e.g. deadbeef)")
	flag.IntVar(&size, "size", 0, "allocate a zero-filled memory of this byte size (ignored when -hex is given)")
	flag.BoolVar(&dump, "dump", false, "print hex and binary renderings of the memory")
	flag.BoolVar(&analyze, "analyze", false, "print memory analysis (size, population count, first set bit)")
	flag.StringVar(&readType, "read", "", "decode a scalar at -offset: uint16|int16|uint32|int32|uint64|int64|float32|float64")
	flag.IntVar(&offset, "offset", 0, "byte offset for -read")
	flag.StringVar(&orderName, "order", "little", "byte order for -read: little|big|native")

	flag.TextVar(&logLevel, "logLevel", zapcore.InfoLevel, "log level (debug, info, warn, error, dpanic, panic, fatal)")

	flag.Parse()
}

func buildMemory() (bitmem.Memory, error) {
	if hexInput == "" {
		return bitmem.New(size)
	}

	data, err := hex.DecodeString(hexInput)
	if err != nil {
		return bitmem.Memory{}, fmt.Errorf("hex decode failure: %w", err)
	}
	m, err := bitmem.New(len(data))
	if err != nil {
		return bitmem.Memory{}, err
	}
	return m.SetBytes(0, data)
}

func parseOrder(name string) (endian.Order, error) {
	switch strings.ToLower(name) {
	case "little":
		return endian.Little, nil
	case "big":
		return endian.Big, nil
	case "native":
		return endian.Native(), nil
	default:
		return endian.Little, fmt.Errorf("invalid order; expected: little, big or native, given: %q", name)
	}
}

func readScalar(m memory.Memory, typ string, addr int, o endian.Order) (any, error) {
	switch typ {
	case "uint16":
		return endian.ReadUint16(m, addr, o)
	case "int16":
		return endian.ReadInt16(m, addr, o)
	case "uint32":
		return endian.ReadUint32(m, addr, o)
	case "int32":
		return endian.ReadInt32(m, addr, o)
	case "uint64":
		return endian.ReadUint64(m, addr, o)
	case "int64":
		return endian.ReadInt64(m, addr, o)
	case "float32":
		return endian.ReadFloat32(m, addr, o)
	case "float64":
		return endian.ReadFloat64(m, addr, o)
	default:
		return nil, fmt.Errorf("invalid type; given: %q", typ)
	}
}

func main() {
	parseFlags()

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(logLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalln("failed to initialize zap logger:", err)
	}

	m, err := buildMemory()
	if err != nil {
		logger.Fatal("failed to build memory", zap.Error(err))
	}
	logger.Debug("memory built", zap.Int("size", m.Size()))

	if dump {
		fmt.Println("hex:   ", m.Hex())
		fmt.Println("binary:", m.Binary())
	}

	if analyze {
		a := analysis{
			Size:        m.Size(),
			BitCapacity: m.BitCapacity(),
			SetBits:     m.CountSetBits(),
			FirstSetBit: "none",
		}
		if addr, ok := m.FindFirstSetBit(); ok {
			a.FirstSetBit = addr.String()
		}
		spew.Dump(a)
	}

	if readType != "" {
		order, err := parseOrder(orderName)
		if err != nil {
			logger.Fatal("invalid -order flag", zap.Error(err))
		}

		v, err := readScalar(m, readType, offset, order)
		if err != nil {
			logger.Fatal("read failure", zap.Error(err))
		}
		fmt.Printf("%s@%d (%v): %v\n", readType, offset, order, v)
	}
}
