package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/fuzzyseg/recognizer"
)

// Demo of fuzzy segment recognition. Input on stdin should be newline
// separated integer points in the form "x y", in curve order. The recognizer
// seeds itself at --start and grows toward both ends of the input until the
// enclosing strip would reach the width bound.
var (
	widthNum = kingpin.Flag("num", "Width bound numerator.").Default("2").Int64()
	widthDen = kingpin.Flag("den", "Width bound denominator.").Default("1").Int64()
	start    = kingpin.Flag("start", "Index of the seed point.").Default("0").Int()
	draw     = kingpin.Flag("draw", "Render the result in the terminal (iTerm only).").Bool()
	scale    = kingpin.Flag("scale", "Pixels per unit when drawing.").Default("20").Float64()
)

func main() {
	kingpin.Parse()

	points := readPoints(os.Stdin)
	if len(points) == 0 {
		fmt.Fprintln(os.Stderr, aurora.Red("no points on stdin"))
		os.Exit(1)
	}

	r, err := recognizer.NewRecognizer(points, *start, *widthNum, *widthDen)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	frontAccepted, backAccepted := 0, 0
	for r.ExtendFront().Accepted() {
		frontAccepted++
	}
	for r.ExtendBack().Accepted() {
		backAccepted++
	}

	strip := r.Primitive()
	fmt.Printf("Read %d points, recognized %s (%s front, %s back)\n",
		len(points),
		aurora.Green(fmt.Sprintf("%d", r.Size())),
		aurora.Cyan(fmt.Sprintf("+%d", frontAccepted)),
		aurora.Cyan(fmt.Sprintf("+%d", backAccepted)))
	fmt.Printf("Strip: %v\n", strip)
	fmt.Printf("Width: %s (bound %d/%d)\n",
		aurora.Yellow(fmt.Sprintf("%g", strip.Width())), *widthNum, *widthDen)
	if !r.IsValid() {
		fmt.Fprintln(os.Stderr, aurora.Red("internal state check failed"))
		os.Exit(1)
	}

	if *draw {
		r.DebugDraw(*scale)
	}
}

func readPoints(in *os.File) []recognizer.Point {
	points := []recognizer.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) recognizer.Point {
	parts := strings.Fields(line)
	x, _ := strconv.ParseInt(parts[0], 10, 64)
	y, _ := strconv.ParseInt(parts[1], 10, 64)
	return recognizer.Point{X: x, Y: y}
}
