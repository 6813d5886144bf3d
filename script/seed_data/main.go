package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Carehealth1/jcindex/config"
	"github.com/Carehealth1/jcindex/lib"
	"github.com/Carehealth1/jcindex/model"
	S "github.com/Carehealth1/jcindex/service"
)

// デモ表示用の計測データ。リスクレベルの3段階が全て現れるようにしてある。
var seeds = []struct {
	daysAgo      int
	jcIndex      float64
	totalLesions int
	newLesions   int
	notes        string
}{
	{150, 2.8, 3, 0, "Baseline scan"},
	{120, 3.1, 3, 0, ""},
	{90, 3.4, 4, 1, ""},
	{60, 3.6, 5, 1, "Follow-up recommended"},
	{30, 4.2, 7, 2, "Escalated to specialist"},
}

// 患者1人分のデモ計測データを登録する。
func main() {
	config.SetupAll()

	flag.Parse()
	args := flag.Args()

	patientId := "Patient 001"
	if len(args) > 0 {
		patientId = args[0]
	}

	service := &S.MeasurementService{
		Service: nil,
		Store:   lib.GetStore(),
	}

	now := time.Now()

	for _, seed := range seeds {
		notes := seed.notes

		m := &model.Measurement{
			PatientId:    patientId,
			ScanDate:     now.AddDate(0, 0, -seed.daysAgo),
			JCIndex:      seed.jcIndex,
			TotalLesions: seed.totalLesions,
			NewLesions:   seed.newLesions,
		}
		if len(notes) > 0 {
			m.Notes = &notes
		}

		if r, e := service.Save(m); e != nil {
			log.Fatalf("Failed to save measurement: %v", e)
		} else {
			fmt.Printf("Saved %s %.1f -> %s\n", r.ScanDate.Format("2006-01-02"), r.JCIndex, r.RiskLevel)
		}
	}
}
