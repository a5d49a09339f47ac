package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cloudx-io/lotclear/auctionapi"
	"github.com/cloudx-io/lotclear/validation"
)

func main() {
	var (
		requestInput = flag.String("request", "", "Resolution request JSON (file path or inline JSON)")
		resultInput  = flag.String("result", "", "Resolution result JSON (file path or inline JSON)")
		recordInput  = flag.String("record", "", "Sealed resolution record (gzipped URL-safe base64), instead of --result")
		outputFormat = flag.String("format", "text", "Output format: text or json")
		help         = flag.Bool("help", false, "Show usage information")
	)

	flag.Parse()

	if *help {
		showUsage()
		os.Exit(0)
	}

	if *requestInput == "" || (*resultInput == "" && *recordInput == "") {
		showUsage()
		fmt.Fprintf(os.Stderr, "\nError: --request and one of --result or --record are required\n")
		os.Exit(2)
	}

	var request auctionapi.ResolutionRequest
	if err := readJSONInput(*requestInput, &request); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading resolution request: %v\n", err)
		os.Exit(2)
	}

	result, err := readResult(*resultInput, *recordInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading resolution result: %v\n", err)
		os.Exit(2)
	}

	verdict, err := validation.ValidateResolution(&validation.ResolutionValidationInput{
		Request: &request,
		Result:  result,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
		os.Exit(2)
	}

	switch *outputFormat {
	case "json":
		printJSON(verdict)
	default:
		printText(&request, verdict)
	}

	if !verdict.IsValid() {
		os.Exit(1)
	}
}

// readJSONInput accepts either a file path or inline JSON. Inline input is
// recognized by a leading brace after trimming whitespace.
func readJSONInput(input string, v any) error {
	data := []byte(input)
	if !strings.HasPrefix(strings.TrimSpace(input), "{") {
		fileData, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("read %s: %w", input, err)
		}
		data = fileData
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}

func readResult(resultInput, recordInput string) (*auctionapi.ResolutionResult, error) {
	if recordInput != "" {
		record, err := auctionapi.ResolutionRecordGzip(recordInput).Decompress()
		if err != nil {
			return nil, err
		}
		return auctionapi.UnmarshalRecord(record)
	}

	var result auctionapi.ResolutionResult
	if err := readJSONInput(resultInput, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func printText(request *auctionapi.ResolutionRequest, verdict *validation.ResolutionValidationResult) {
	fmt.Printf("Auction:    %s\n", request.AuctionID)
	fmt.Printf("Supply:     %s\n", status(verdict.SupplyValid))
	fmt.Printf("Reserve:    %s\n", status(verdict.ReserveValid))
	fmt.Printf("Pricing:    %s\n", status(verdict.PricingValid))
	fmt.Printf("Quantities: %s\n", status(verdict.QuantityValid))
	fmt.Printf("Bids hash:  %s\n", status(verdict.BidsHashValid))
	fmt.Printf("Sales hash: %s\n", status(verdict.SalesHashValid))
	fmt.Printf("Overall:    %s\n", status(verdict.IsValid()))

	for _, detail := range verdict.ValidationDetails {
		fmt.Printf("  - %s\n", detail)
	}
}

func printJSON(verdict *validation.ResolutionValidationResult) {
	output := struct {
		*validation.ResolutionValidationResult
		Valid bool `json:"valid"`
	}{verdict, verdict.IsValid()}

	data, _ := json.MarshalIndent(output, "", "  ")
	fmt.Println(string(data))
}

func status(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

func showUsage() {
	fmt.Println("resolution-validator - verify an auction resolution result against its request")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  resolution-validator --request <json> --result <json> [--format text|json]")
	fmt.Println("  resolution-validator --request <json> --record <sealed-record>")
	fmt.Println()
	fmt.Println("Inputs accept a file path or inline JSON.")
	fmt.Println()
	flag.PrintDefaults()
}
