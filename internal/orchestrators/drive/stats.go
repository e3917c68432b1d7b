package drive

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	entity "github.com/KirkDiggler/drive-api/internal/entities/drive"
	"github.com/KirkDiggler/drive-api/internal/errors"
	"github.com/KirkDiggler/drive-api/internal/forms/driveform"
	"github.com/KirkDiggler/drive-api/internal/repositories/catalog"
	driverepo "github.com/KirkDiggler/drive-api/internal/repositories/drive"
)

const (
	// MaxPairingStats is the most substats a pairing query may combine
	MaxPairingStats = 4

	// maxExampleMatches is the match count above which no examples are returned
	maxExampleMatches = 20
	maxExamples       = 10
)

// PositionLabel renders a slot the way the statistics keys name it
func PositionLabel(position int) string {
	return fmt.Sprintf("%d号位", position)
}

// UpgradeLabel renders an upgrade level the way the statistics keys name it
func UpgradeLabel(upgrades int) string {
	return fmt.Sprintf("+%d", upgrades)
}

// GetStatistics aggregates every stored drive
func (o *orchestrator) GetStatistics(ctx context.Context, _ *GetStatisticsInput) (*GetStatisticsOutput, error) {
	out, err := o.driveRepo.ListAll(ctx, driverepo.ListAllInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drives")
	}

	stats := buildStatistics(out.Pieces)
	stats.LastUpdated = o.clock.Now()

	slog.DebugContext(ctx, "computed drive statistics",
		"total_pieces", stats.TotalPieces,
		"total_sets", stats.TotalSets)

	return &GetStatisticsOutput{Statistics: stats}, nil
}

func buildStatistics(pieces []*entity.Piece) *Statistics {
	stats := &Statistics{
		TotalPieces:              len(pieces),
		PositionDistribution:     make(map[string]int),
		SetDistribution:          make(map[string]int),
		MainStats:                make(map[string]map[string]int),
		SubstatFrequency:         make(map[string]*SubstatFrequency),
		SubstatCountDistribution: make(map[int]int),
		UpgradeDistribution:      make(map[string]int),
	}

	for _, slot := range driveform.Slots() {
		stats.MainStats[PositionLabel(slot)] = make(map[string]int)
	}

	totalSubstats := 0
	for _, piece := range pieces {
		label := PositionLabel(piece.Position)
		stats.PositionDistribution[label]++
		stats.SetDistribution[piece.SetName]++
		if _, ok := stats.MainStats[label]; ok {
			stats.MainStats[label][piece.MainStat]++
		}
		stats.UpgradeDistribution[UpgradeLabel(piece.TotalUpgrades)]++

		if n := len(piece.Substats); n > 0 {
			stats.SubstatCountDistribution[n]++
		}
		for _, substat := range piece.Substats {
			freq, ok := stats.SubstatFrequency[substat.Name]
			if !ok {
				freq = &SubstatFrequency{}
				stats.SubstatFrequency[substat.Name] = freq
			}
			freq.Count++
			totalSubstats++
		}
	}

	stats.TotalSets = len(stats.SetDistribution)

	if stats.TotalPieces > 0 {
		stats.AvgSubstats = roundTo(float64(totalSubstats)/float64(stats.TotalPieces), 1)
		for _, freq := range stats.SubstatFrequency {
			freq.Percentage = roundTo(float64(freq.Count)/float64(stats.TotalPieces)*100, 2)
		}
	}

	return stats
}

// CalculatePairing compares the observed rate of drives carrying every
// selected substat with the rate expected if substats were independent
func (o *orchestrator) CalculatePairing(ctx context.Context, input *CalculatePairingInput) (*CalculatePairingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateCount("selected_stats", len(input.SelectedStats), 1, MaxPairingStats, vb)
	errors.ValidateUnique("selected_stats", input.SelectedStats, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	known, err := o.catalogRepo.HasStatTypes(ctx, catalog.HasStatTypesInput{Names: input.SelectedStats})
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up stat types")
	}
	if len(known.Unknown) > 0 {
		return nil, errors.InvalidArgumentf("unknown stat types: %v", known.Unknown).
			WithMeta("unknown_stats", known.Unknown)
	}

	all, err := o.driveRepo.ListAll(ctx, driverepo.ListAllInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drives")
	}
	if len(all.Pieces) == 0 {
		return nil, errors.FailedPrecondition("no drive data available")
	}

	pairing := computePairing(all.Pieces, input.SelectedStats)

	slog.InfoContext(ctx, "calculated pairing probability",
		"selected_stats", input.SelectedStats,
		"match_count", pairing.MatchCount,
		"total_pieces", pairing.TotalPieces)

	return &CalculatePairingOutput{Pairing: pairing}, nil
}

func computePairing(pieces []*entity.Piece, selected []string) *Pairing {
	total := float64(len(pieces))

	individual := make(map[string]float64, len(selected))
	theoretical := 1.0
	for _, stat := range selected {
		count := 0
		for _, piece := range pieces {
			if piece.HasSubstat(stat) {
				count++
			}
		}
		probability := float64(count) / total
		individual[stat] = roundTo(probability*100, 2)
		theoretical *= probability
	}

	var matches []*entity.Piece
	for _, piece := range pieces {
		if hasAllSubstats(piece, selected) {
			matches = append(matches, piece)
		}
	}

	actual := float64(len(matches)) / total
	theoreticalPct := roundTo(theoretical*100, 4)
	actualPct := roundTo(actual*100, 4)

	expectation := 0
	if actual > 0 {
		expectation = int(math.Round(1 / actual))
	}

	pairing := &Pairing{
		Theoretical:             theoreticalPct,
		Actual:                  actualPct,
		Difference:              roundTo(actualPct-theoreticalPct, 4),
		MatchCount:              len(matches),
		TotalPieces:             len(pieces),
		Expectation:             expectation,
		IndividualProbabilities: individual,
		SelectedStats:           append([]string(nil), selected...),
	}

	if len(matches) > 0 && len(matches) <= maxExampleMatches {
		for i, piece := range matches {
			if i == maxExamples {
				break
			}
			pairing.MatchingExamples = append(pairing.MatchingExamples, &MatchingExample{
				DriveID:  piece.ID,
				SetName:  piece.SetName,
				Position: piece.Position,
				MainStat: piece.MainStat,
			})
		}
	}

	return pairing
}

func hasAllSubstats(piece *entity.Piece, stats []string) bool {
	for _, stat := range stats {
		if !piece.HasSubstat(stat) {
			return false
		}
	}
	return true
}

func roundTo(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}
