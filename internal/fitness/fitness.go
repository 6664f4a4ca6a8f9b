// Package fitness provides statistical fitness functions used to grade
// candidate decryptions: n-gram log-probability scores backed by embedded
// English frequency tables, and the index of coincidence.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package fitness

import (
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/iKevinY/ultra/internal/alphabet"
)

//go:embed data/bigrams.txt
var bigramData string

//go:embed data/trigrams.txt
var trigramData string

//go:embed data/quadgrams.txt
var quadgramData string

// epsilonFloor is the log-probability assigned to n-grams absent from
// the corpus, keeping every message's score finite.
var epsilonFloor = math.Log(2.220446049250313e-16)

// The tables hold ln(count) per base-26 n-gram index. They are built on
// first use and shared read-only across goroutines; a corrupt data file
// is fatal.
var (
	bigrams   = sync.OnceValue(func() []float64 { return loadTable("bigrams.txt", bigramData, 2) })
	trigrams  = sync.OnceValue(func() []float64 { return loadTable("trigrams.txt", trigramData, 3) })
	quadgrams = sync.OnceValue(func() []float64 { return loadTable("quadgrams.txt", quadgramData, 4) })
)

// loadTable parses "<NGRAM> <COUNT>" lines into a 26^n table of log
// counts.
func loadTable(name, data string, n int) []float64 {
	size := 1
	for i := 0; i < n; i++ {
		size *= alphabet.Size
	}

	table := make([]float64, size)
	for i := range table {
		table[i] = epsilonFloor
	}

	for _, line := range strings.Split(data, "\n") {
		if line == "" {
			continue
		}

		gram, countStr, ok := strings.Cut(line, " ")
		if !ok || len(gram) != n {
			panic(fmt.Sprintf("fitness: %s: malformed line %q", name, line))
		}

		idx := 0
		for i := 0; i < n; i++ {
			if gram[i] < 'A' || gram[i] > 'Z' {
				panic(fmt.Sprintf("fitness: %s: malformed n-gram %q", name, gram))
			}
			idx = idx*alphabet.Size + alphabet.Index(gram[i])
		}

		count, err := strconv.ParseFloat(countStr, 64)
		if err != nil || count <= 0 {
			panic(fmt.Sprintf("fitness: %s: malformed count %q", name, countStr))
		}
		table[idx] = math.Log(count)
	}

	return table
}

// ngramScore sums the log-probabilities of each length-n window of the
// message's letter indices.
func ngramScore(n int, table []float64, msg string) (float64, error) {
	indices := alphabet.Indices(msg)
	if len(indices) < n {
		return 0, fmt.Errorf("message has fewer than %d alphabetic characters", n)
	}

	var sum float64
	for i := 0; i+n <= len(indices); i++ {
		idx := 0
		for j := 0; j < n; j++ {
			idx = idx*alphabet.Size + indices[i+j]
		}
		sum += table[idx]
	}
	return sum, nil
}

// Bigram returns the bigram log-probability score of a message. Larger
// is more English-like.
func Bigram(msg string) (float64, error) {
	return ngramScore(2, bigrams(), msg)
}

// Trigram returns the trigram log-probability score of a message.
func Trigram(msg string) (float64, error) {
	return ngramScore(3, trigrams(), msg)
}

// Quadgram returns the quadgram log-probability score of a message.
func Quadgram(msg string) (float64, error) {
	return ngramScore(4, quadgrams(), msg)
}

// IoC returns the index of coincidence of a message. English prose
// scores near 1.73; uniformly random letters score near 1.0.
func IoC(msg string) (float64, error) {
	indices := alphabet.Indices(msg)
	n := len(indices)
	if n < 2 {
		return 0, fmt.Errorf("message has fewer than 2 alphabetic characters")
	}

	var buckets [alphabet.Size]int
	for _, idx := range indices {
		buckets[idx]++
	}

	tot := 0
	for _, b := range buckets {
		tot += b * (b - 1)
	}

	return float64(tot) / float64(n*(n-1)/alphabet.Size), nil
}
