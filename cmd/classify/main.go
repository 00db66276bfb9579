package main

import (
	"fmt"
	"os"
	"strconv"

	"dealradar/internal/domain/service/pricing"
)

// go run cmd/classify/main.go <list_price> <current_price>
//
// Prints the tier, score and price label for one price pair.

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: classify <list_price> <current_price>")
		os.Exit(2)
	}

	listPrice, err := strconv.ParseFloat(os.Args[1], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid list price %q\n", os.Args[1])
		os.Exit(2)
	}

	currentPrice, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid current price %q\n", os.Args[2])
		os.Exit(2)
	}

	score := pricing.Compute(listPrice, currentPrice)
	tier := pricing.Classify(listPrice, currentPrice)

	fmt.Printf("tier:     %s\n", tier)
	fmt.Printf("score:    %.4f\n", score.Score)
	fmt.Printf("discount: %d%%\n", score.DiscountPercent)
	fmt.Printf("savings:  $%.2f\n", score.Savings)
	fmt.Printf("label:    %s\n", pricing.FormatPrice(listPrice, currentPrice))
}
