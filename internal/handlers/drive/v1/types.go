package v1

import (
	"time"

	entity "github.com/KirkDiggler/drive-api/internal/entities/drive"
	"github.com/KirkDiggler/drive-api/internal/forms/driveform"
	"github.com/KirkDiggler/drive-api/internal/orchestrators/drive"
)

// AddDriveRequest is the body of POST /add
type AddDriveRequest struct {
	SetName  string   `json:"set_name"`
	Position int      `json:"position"`
	MainStat string   `json:"main_stat_name"`
	Substats []string `json:"substats"`
}

// UpdateDriveRequest is the body of PUT /pieces/{id}. Omitted fields are left unchanged.
type UpdateDriveRequest struct {
	MainStat *string  `json:"main_stat_name,omitempty"`
	Substats []string `json:"substats,omitempty"`
}

// UpgradeDriveRequest is the body of POST /pieces/{id}/upgrade
type UpgradeDriveRequest struct {
	UpgradeType    string `json:"upgrade_type"`
	NewSubstatName string `json:"new_substat_name,omitempty"`
	SubstatID      string `json:"substat_id,omitempty"`
}

// DowngradeDriveRequest is the body of POST /pieces/{id}/downgrade
type DowngradeDriveRequest struct {
	SubstatID string `json:"substat_id"`
}

// CheckFormRequest is the body of POST /form/check
type CheckFormRequest struct {
	Form            *driveform.Form `json:"form,omitempty"`
	NewPosition     *int            `json:"new_position,omitempty"`
	NewMainStatName *string         `json:"new_main_stat_name,omitempty"`
}

// PairingRequest is the body of POST /stats/pairing
type PairingRequest struct {
	SelectedStats []string `json:"selected_stats"`
}

// DriveResponse is the wire form of a stored drive
type DriveResponse struct {
	ID                 string             `json:"drive_id"`
	SetName            string             `json:"set_name"`
	Position           int                `json:"position"`
	MainStat           string             `json:"main_stat_name"`
	MainStatLevel      int                `json:"main_stat_level"`
	TotalUpgrades      int                `json:"total_upgrades"`
	Substats           []string           `json:"substats"`
	SubstatsWithLevels []*SubstatResponse `json:"substats_with_levels"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// SubstatResponse is one substat line with its upgrade state
type SubstatResponse struct {
	ID           string `json:"substat_id"`
	Name         string `json:"name"`
	UpgradeCount int    `json:"upgrade_count"`
	IsOriginal   bool   `json:"is_original"`
}

// DriveMessageResponse pairs a status message with the affected drive
type DriveMessageResponse struct {
	Message string         `json:"message"`
	Drive   *DriveResponse `json:"drive,omitempty"`
}

// ListDrivesResponse is one page of drives
type ListDrivesResponse struct {
	Drives     []*DriveResponse    `json:"drives"`
	Pagination *PaginationResponse `json:"pagination"`
}

// PaginationResponse describes the page returned by ListDrivesResponse
type PaginationResponse struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// UpgradeResponse reports an upgrade or downgrade
type UpgradeResponse struct {
	Message          string                 `json:"message"`
	Result           *UpgradeResultResponse `json:"result"`
	NewTotalUpgrades int                    `json:"new_total_upgrades"`
	Drive            *DriveResponse         `json:"drive"`
}

// UpgradeResultResponse describes the substat line an upgrade touched
type UpgradeResultResponse struct {
	Type         string `json:"type"`
	SubstatID    string `json:"substat_id"`
	SubstatName  string `json:"substat_name"`
	UpgradeCount int    `json:"upgrade_count"`
}

// SlotRulesResponse is the slot rule table
type SlotRulesResponse struct {
	Slots       []*SlotRuleResponse `json:"slots"`
	Secondaries []string            `json:"secondaries"`
}

// SlotRuleResponse is the primary attribute rule of one slot
type SlotRuleResponse struct {
	Position       int      `json:"position"`
	Fixed          bool     `json:"fixed"`
	LegalPrimaries []string `json:"legal_primaries"`
	Hint           string   `json:"hint"`
}

// FormReportResponse is the engine's verdict on a form
type FormReportResponse struct {
	Form           *driveform.Form    `json:"form"`
	Valid          bool               `json:"valid"`
	Problems       []*ProblemResponse `json:"problems"`
	Hint           string             `json:"hint"`
	LegalPrimaries []string           `json:"legal_primaries"`
	Secondaries    []string           `json:"secondaries"`
}

// ProblemResponse names one form problem and the field it belongs to
type ProblemResponse struct {
	Code  string `json:"code"`
	Field string `json:"field"`
}

// StatisticsResponse is the collection summary served by GET /stats
type StatisticsResponse struct {
	TotalPieces              int                                  `json:"total_pieces"`
	TotalSets                int                                  `json:"total_sets"`
	AvgSubstats              float64                              `json:"avg_substats"`
	PositionDistribution     map[string]int                       `json:"position_distribution"`
	SetDistribution          map[string]int                       `json:"set_distribution"`
	MainStats                map[string]map[string]int            `json:"main_stats"`
	SubstatFrequency         map[string]*SubstatFrequencyResponse `json:"substat_frequency"`
	SubstatCountDistribution map[int]int                          `json:"substat_count_distribution"`
	UpgradeDistribution      map[string]int                       `json:"upgrade_distribution"`
	LastUpdated              time.Time                            `json:"last_updated"`
}

// SubstatFrequencyResponse counts drives carrying a substat
type SubstatFrequencyResponse struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PairingResponse is the result of POST /stats/pairing
type PairingResponse struct {
	Theoretical             float64                    `json:"theoretical"`
	Actual                  float64                    `json:"actual"`
	Difference              float64                    `json:"difference"`
	MatchCount              int                        `json:"matchCount"`
	TotalPieces             int                        `json:"totalPieces"`
	Expectation             int                        `json:"expectation"`
	IndividualProbabilities map[string]float64         `json:"individual_probabilities"`
	SelectedStats           []string                   `json:"selected_stats"`
	MatchingExamples        []*MatchingExampleResponse `json:"matching_examples,omitempty"`
}

// MatchingExampleResponse is a drive carrying every selected substat
type MatchingExampleResponse struct {
	DriveID  string `json:"drive_id"`
	SetName  string `json:"set_name"`
	Position int    `json:"position"`
	MainStat string `json:"main_stat"`
}

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Error string         `json:"error"`
	Code  string         `json:"code"`
	Meta  map[string]any `json:"meta,omitempty"`
}

func convertPiece(piece *entity.Piece) *DriveResponse {
	if piece == nil {
		return nil
	}

	resp := &DriveResponse{
		ID:                 piece.ID,
		SetName:            piece.SetName,
		Position:           piece.Position,
		MainStat:           piece.MainStat,
		MainStatLevel:      piece.MainStatLevel,
		TotalUpgrades:      piece.TotalUpgrades,
		Substats:           piece.SubstatNames(),
		SubstatsWithLevels: make([]*SubstatResponse, 0, len(piece.Substats)),
		CreatedAt:          piece.CreatedAt,
		UpdatedAt:          piece.UpdatedAt,
	}
	for _, s := range piece.Substats {
		resp.SubstatsWithLevels = append(resp.SubstatsWithLevels, &SubstatResponse{
			ID:           s.ID,
			Name:         s.Name,
			UpgradeCount: s.UpgradeCount,
			IsOriginal:   s.IsOriginal,
		})
	}
	return resp
}

func convertPieces(pieces []*entity.Piece) []*DriveResponse {
	out := make([]*DriveResponse, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, convertPiece(p))
	}
	return out
}

func convertPagination(p *drive.Pagination) *PaginationResponse {
	if p == nil {
		return nil
	}
	return &PaginationResponse{
		CurrentPage: p.CurrentPage,
		PerPage:     p.PerPage,
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		HasNext:     p.HasNext,
		HasPrev:     p.HasPrev,
	}
}

func convertUpgrade(message string, piece *entity.Piece, result *drive.UpgradeResult) *UpgradeResponse {
	return &UpgradeResponse{
		Message: message,
		Result: &UpgradeResultResponse{
			Type:         result.Type,
			SubstatID:    result.SubstatID,
			SubstatName:  result.SubstatName,
			UpgradeCount: result.UpgradeCount,
		},
		NewTotalUpgrades: result.TotalUpgrades,
		Drive:            convertPiece(piece),
	}
}

func convertReport(report *drive.FormReport) *FormReportResponse {
	resp := &FormReportResponse{
		Form:           report.Form,
		Valid:          report.Valid,
		Problems:       make([]*ProblemResponse, 0, len(report.Problems)),
		Hint:           report.Hint,
		LegalPrimaries: report.LegalPrimaries,
		Secondaries:    report.Secondaries,
	}
	for _, p := range report.Problems {
		resp.Problems = append(resp.Problems, &ProblemResponse{Code: string(p), Field: p.Field()})
	}
	return resp
}

func convertSlotRules(out *drive.ListSlotRulesOutput) *SlotRulesResponse {
	resp := &SlotRulesResponse{
		Slots:       make([]*SlotRuleResponse, 0, len(out.Rules)),
		Secondaries: out.Secondaries,
	}
	for _, r := range out.Rules {
		resp.Slots = append(resp.Slots, &SlotRuleResponse{
			Position:       r.Slot,
			Fixed:          r.Fixed,
			LegalPrimaries: r.LegalPrimaries,
			Hint:           r.Hint,
		})
	}
	return resp
}

func convertStatistics(stats *drive.Statistics) *StatisticsResponse {
	resp := &StatisticsResponse{
		TotalPieces:              stats.TotalPieces,
		TotalSets:                stats.TotalSets,
		AvgSubstats:              stats.AvgSubstats,
		PositionDistribution:     stats.PositionDistribution,
		SetDistribution:          stats.SetDistribution,
		MainStats:                stats.MainStats,
		SubstatFrequency:         make(map[string]*SubstatFrequencyResponse, len(stats.SubstatFrequency)),
		SubstatCountDistribution: stats.SubstatCountDistribution,
		UpgradeDistribution:      stats.UpgradeDistribution,
		LastUpdated:              stats.LastUpdated,
	}
	for name, freq := range stats.SubstatFrequency {
		resp.SubstatFrequency[name] = &SubstatFrequencyResponse{Count: freq.Count, Percentage: freq.Percentage}
	}
	return resp
}

func convertPairing(p *drive.Pairing) *PairingResponse {
	resp := &PairingResponse{
		Theoretical:             p.Theoretical,
		Actual:                  p.Actual,
		Difference:              p.Difference,
		MatchCount:              p.MatchCount,
		TotalPieces:             p.TotalPieces,
		Expectation:             p.Expectation,
		IndividualProbabilities: p.IndividualProbabilities,
		SelectedStats:           p.SelectedStats,
	}
	for _, ex := range p.MatchingExamples {
		resp.MatchingExamples = append(resp.MatchingExamples, &MatchingExampleResponse{
			DriveID:  ex.DriveID,
			SetName:  ex.SetName,
			Position: ex.Position,
			MainStat: ex.MainStat,
		})
	}
	return resp
}
