// zkboo - ZKBoo non-interactive zero-knowledge proof demo CLI
//
// Usage:
//
//	zkboo prove <circuit> <out-file>      Prove the named demo circuit
//	zkboo verify <in-file> <circuit>      Verify a proof blob
//	zkboo serve                           Start the HTTP proof service
//	zkboo benchmark                       Run performance benchmarks
package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/zeebo/blake3"

	"github.com/zokerlab/zkboo/circuits"
	"github.com/zokerlab/zkboo/ikos"
	"github.com/zokerlab/zkboo/service"
	"github.com/zokerlab/zkboo/store"
	"github.com/zokerlab/zkboo/zkboo"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "prove":
		cmdProve()
	case "verify":
		cmdVerify()
	case "serve":
		cmdServe()
	case "benchmark":
		cmdBenchmark()
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`zkboo - ZKBoo non-interactive zero-knowledge proof demo

Usage:
  zkboo <command> [arguments]

Commands:
  prove <circuit> <out-file>   Prove the named demo circuit, write the blob
  verify <in-file> <circuit>   Verify a proof blob against a named circuit
  serve                        Start the HTTP proof service
  benchmark                    Run performance benchmarks
  help                         Show this help

Known circuits: add-chain, multiply-by-constant`)
}

func cmdProve() {
	if len(os.Args) < 4 {
		fmt.Println("usage: zkboo prove <circuit> <out-file>")
		os.Exit(1)
	}
	circuitName, outFile := os.Args[2], os.Args[3]

	pair, err := circuits.Lookup(circuitName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	secret := []uint32{97, 107}
	public := []uint32{15}

	start := time.Now()
	proof, err := zkboo.Prove(secret, public, 1, pair.Prover)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	blob := proof.Marshal()
	if err := os.WriteFile(outFile, blob, 0o644); err != nil {
		fmt.Printf("Error writing proof: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Proved %q in %v\n", circuitName, elapsed)
	fmt.Printf("Public output: %v\n", proof.PublicOutput)
	fmt.Printf("Proof size: %d bytes, written to %s\n", len(blob), outFile)
}

func cmdVerify() {
	if len(os.Args) < 4 {
		fmt.Println("usage: zkboo verify <in-file> <circuit>")
		os.Exit(1)
	}
	inFile, circuitName := os.Args[2], os.Args[3]

	pair, err := circuits.Lookup(circuitName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	blob, err := os.ReadFile(inFile)
	if err != nil {
		fmt.Printf("Error reading proof: %v\n", err)
		os.Exit(1)
	}

	proof, err := zkboo.UnmarshalProof(blob)
	if err != nil {
		fmt.Printf("Error decoding proof: %v\n", err)
		os.Exit(1)
	}

	challenge := zkboo.QueryRandomOracle(proof.InputLen, proof.OutputLen, proof.OutputShares, proof.Commitments)
	response := zkboo.BuildResponse(proof, challenge)
	rebuilt := zkboo.RebuildProof(proof, challenge)

	start := time.Now()
	ok, err := zkboo.Verify(proof.InputLen, []uint32{15}, proof.PublicOutput, challenge, rebuilt, response, pair.Verifier)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("Verification error: %v\n", err)
	}
	fmt.Printf("Valid: %v (checked in %v)\n", ok, elapsed)
}

func cmdServe() {
	log.Println("Starting zkboo proof service...")

	dbUrl := requireEnv("DATABASE_URL")
	st, err := store.Connect(context.Background(), dbUrl)
	if err != nil {
		log.Fatalf("FATAL: failed to connect to database: %v", err)
	}
	defer st.Close()
	if err := st.InitSchema(context.Background()); err != nil {
		log.Fatalf("FATAL: schema init failed: %v", err)
	}

	hub := service.NewHub()
	router := service.SetupRouter(st, hub)

	addr := getEnvOrDefault("ZKBOO_LISTEN_ADDR", ":8090")
	log.Printf("Listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("FATAL: server stopped: %v", err)
	}
}

func cmdBenchmark() {
	fmt.Println("zkboo Benchmarks")
	fmt.Println("================")
	fmt.Println()

	const iterations = 50
	tapeSamples := make([]float64, 0, iterations)
	var seed [16]byte
	for i := 0; i < iterations; i++ {
		seed[0] = byte(i)
		start := time.Now()
		ikos.GenerateTape(seed, ikos.TapeLengthBits(1))
		tapeSamples = append(tapeSamples, float64(time.Since(start).Nanoseconds()))
	}
	tapeMean, _ := stats.Mean(tapeSamples)
	tapeStd, _ := stats.StandardDeviation(tapeSamples)
	fmt.Printf("Tape expansion: %.0fns mean, %.0fns stddev (n=%d)\n", tapeMean, tapeStd, iterations)

	andSamples := make([]float64, 0, iterations)
	for i := 0; i < iterations; i++ {
		proof, err := zkboo.Prove([]uint32{97}, []uint32{3}, 1, func(secret, public []*ikos.ShareP) ([]*ikos.ShareP, error) {
			start := time.Now()
			out, err := ikos.AndP(secret[0], public[0])
			andSamples = append(andSamples, float64(time.Since(start).Nanoseconds()))
			return []*ikos.ShareP{out}, err
		})
		if err != nil {
			log.Fatalf("benchmark circuit failed: %v", err)
		}
		_ = proof
	}
	andMean, _ := stats.Mean(andSamples)
	fmt.Printf("AND gate:       %.0fns mean (n=%d)\n", andMean, len(andSamples))

	benchmarkHashThroughput()
}

func benchmarkHashThroughput() {
	data := make([]byte, 1<<20)
	for i := range data {
		data[i] = byte(i)
	}

	start := time.Now()
	sum := sha256.Sum256(data)
	sha256Elapsed := time.Since(start)

	start = time.Now()
	b3 := blake3.Sum256(data)
	blake3Elapsed := time.Since(start)

	fmt.Printf("\nHash throughput over 1 MiB (benchmark only, not part of the proof wire format):\n")
	fmt.Printf("  SHA-256: %v (%s...)\n", sha256Elapsed, hex.EncodeToString(sum[:8]))
	fmt.Printf("  BLAKE3:  %v (%s...)\n", blake3Elapsed, hex.EncodeToString(b3[:8]))
}

func requireEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("FATAL: required environment variable %s is not set", key)
	}
	return val
}

func getEnvOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
