package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Carehealth1/jcindex/config"
	"github.com/Carehealth1/jcindex/lib"
	S "github.com/Carehealth1/jcindex/service"
)

type Args struct {
	patientId string
	output    string
}

func parseArgs() *Args {
	output := flag.String("o", "", "出力先ファイルパス。省略時はjc_index_data_<患者ID>.csv。")

	flag.Parse()
	args := flag.Args()

	if len(args) != 1 {
		log.Fatal("usage: go run main.go [-o output] [patientId]")
	}

	return &Args{
		patientId: args[0],
		output:    *output,
	}
}

// 患者の計測履歴をCSVファイルへ書き出す。
func main() {
	config.SetupAll()

	args := parseArgs()

	output := args.output
	if len(output) == 0 {
		output = S.ExportFilename(args.patientId)
	}

	service := &S.ExportService{
		Service: nil,
		Store:   lib.GetStore(),
	}

	file, err := os.Create(output)

	if err != nil {
		log.Fatalf("Failed to create %s: %v", output, err)
	}

	defer file.Close()

	if err := service.WriteCSV(file, args.patientId); err != nil {
		log.Fatalf("Failed to export measurements: %v", err)
	}

	fmt.Printf("Exported measurements of %s to %s\n", args.patientId, output)
}
