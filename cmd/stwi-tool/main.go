// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

// stwi-tool reads or writes a device register over a bit-banged two-wire
// bus driven from two GPIO pins.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"

	"github.com/odolgy/stwi"
	"github.com/odolgy/stwi/host/bitbang"
)

func widthFromFlag(s string) (stwi.RegWidth, error) {
	switch s {
	case "none":
		return stwi.RegNone, nil
	case "byte":
		return stwi.RegByte, nil
	case "word":
		return stwi.RegWord, nil
	default:
		return 0, fmt.Errorf("unknown -width %q, want none, byte or word", s)
	}
}

func mainImpl() error {
	sclName := flag.String("scl", "", "SCL GPIO pin name, e.g. GPIO2")
	sdaName := flag.String("sda", "", "SDA GPIO pin name, e.g. GPIO3")
	addr := flag.Int("addr", 0x50, "7-bit device address")
	widthFlag := flag.String("width", "byte", "register address width: none, byte or word")
	reg := flag.Int("reg", 0, "register address")
	length := flag.Int("length", 1, "number of bytes to read; ignored if -write is set")
	write := flag.String("write", "", "hex-encoded payload to write instead of reading")
	speed := flag.Int64("speed", 100000, "bus speed in Hz")
	stretch := flag.Duration("stretch", 10*time.Millisecond, "clock-stretch timeout budget")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)

	if *sclName == "" || *sdaName == "" {
		return fmt.Errorf("-scl and -sda are required")
	}
	width, err := widthFromFlag(*widthFlag)
	if err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	scl := gpioreg.ByName(*sclName)
	if scl == nil {
		return fmt.Errorf("no such pin: %s", *sclName)
	}
	sda := gpioreg.ByName(*sdaName)
	if sda == nil {
		return fmt.Errorf("no such pin: %s", *sdaName)
	}
	log.Printf("Using pins SCL: %s  SDA: %s", scl, sda)

	platform, err := bitbang.NewPlatform(scl, sda, *speed, *stretch)
	if err != nil {
		return err
	}
	bus := bitbang.NewBus(platform)

	if *write != "" {
		payload, err := hex.DecodeString(*write)
		if err != nil {
			return fmt.Errorf("-write: %v", err)
		}
		res := bus.Write(byte(*addr), width, uint16(*reg), payload)
		if res.Err != nil {
			return fmt.Errorf("write failed at stage %s after %d bytes: %v", res.Stage, res.DataSize, res.Err)
		}
		fmt.Printf("wrote %d bytes\n", res.DataSize)
		return nil
	}

	buf := make([]byte, *length)
	res := bus.Read(byte(*addr), width, uint16(*reg), buf)
	if res.Err != nil {
		return fmt.Errorf("read failed at stage %s after %d bytes: %v", res.Stage, res.DataSize, res.Err)
	}
	fmt.Println(hex.EncodeToString(buf))
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "stwi-tool: %s.\n", err)
		os.Exit(1)
	}
}
