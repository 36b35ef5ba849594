package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"vigcrack/internal/vigenere"
)

func main() {
	var key string
	var decrypt bool
	flag.StringVar(&key, "key", "", "Key (letters; lowercased before use)")
	flag.BoolVar(&decrypt, "decrypt", false, "Decrypt instead of encrypt")
	flag.Parse()
	if key == "" {
		fmt.Println("Usage: vigenere --key=lemon [--decrypt] [text.txt]")
		os.Exit(1)
	}

	var text string
	if args := flag.Args(); len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		text = string(data)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("failed to read stdin: %v", err)
		}
		text = string(data)
	}

	var out string
	var err error
	if decrypt {
		out, err = vigenere.Decrypt(text, key)
	} else {
		out, err = vigenere.Encrypt(text, key)
	}
	if err != nil {
		log.Fatalf("transform failed: %v", err)
	}
	fmt.Print(out)
}
