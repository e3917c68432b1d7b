package drive

import (
	"time"

	entity "github.com/KirkDiggler/drive-api/internal/entities/drive"
	"github.com/KirkDiggler/drive-api/internal/forms/driveform"
)

// Upgrade result types
const (
	ResultNewSubstat      = "new_substat"
	ResultUpgradeExisting = "upgrade_existing"
	ResultDowngrade       = "downgrade"
)

// Pagination defaults
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// CheckFormInput carries a form snapshot plus the edits to apply to it.
// NewSlot and NewPrimaryAttribute run the engine transitions in that order.
type CheckFormInput struct {
	Form                *driveform.Form
	NewSlot             *int
	NewPrimaryAttribute *string
}

// CheckFormOutput defines the response for checking a form
type CheckFormOutput struct {
	Report *FormReport
}

// FormReport is the engine's view of a form after the requested edits
type FormReport struct {
	Form           *driveform.Form
	Valid          bool
	Problems       []driveform.Problem
	Hint           string
	LegalPrimaries []string
	Secondaries    []string
}

// CreateDriveInput defines the request for storing a new drive
type CreateDriveInput struct {
	SetName  string
	Position int
	MainStat string
	Substats []string
}

// CreateDriveOutput defines the response for storing a new drive
type CreateDriveOutput struct {
	Piece *entity.Piece
}

// GetDriveInput defines the request for getting a drive
type GetDriveInput struct {
	ID string
}

// GetDriveOutput defines the response for getting a drive
type GetDriveOutput struct {
	Piece *entity.Piece
}

// ListDrivesInput defines the request for one page of drives.
// Zero values fall back to DefaultPage and DefaultPerPage.
type ListDrivesInput struct {
	Page    int
	PerPage int
}

// ListDrivesOutput defines the response for listing drives
type ListDrivesOutput struct {
	Pieces     []*entity.Piece
	Pagination *Pagination
}

// Pagination describes where a page sits in the full drive list
type Pagination struct {
	CurrentPage int
	PerPage     int
	TotalItems  int
	TotalPages  int
	HasNext     bool
	HasPrev     bool
}

// UpdateDriveInput defines the request for editing a drive.
// A nil MainStat or Substats leaves that part untouched.
type UpdateDriveInput struct {
	ID       string
	MainStat *string
	Substats []string
}

// UpdateDriveOutput defines the response for editing a drive
type UpdateDriveOutput struct {
	Piece *entity.Piece
}

// UpgradeDriveInput defines the request for one upgrade step
type UpgradeDriveInput struct {
	ID   string
	Type entity.UpgradeType
	// NewSubstatName picks the stat for a "new" upgrade; empty rolls one
	NewSubstatName string
	// SubstatID selects the line for an "existing" upgrade
	SubstatID string
}

// UpgradeDriveOutput defines the response for an upgrade step
type UpgradeDriveOutput struct {
	Piece  *entity.Piece
	Result *UpgradeResult
}

// DowngradeDriveInput defines the request for undoing one upgrade step
type DowngradeDriveInput struct {
	ID        string
	SubstatID string
}

// DowngradeDriveOutput defines the response for a downgrade
type DowngradeDriveOutput struct {
	Piece  *entity.Piece
	Result *UpgradeResult
}

// UpgradeResult summarizes what an upgrade or downgrade changed
type UpgradeResult struct {
	Type          string
	SubstatID     string
	SubstatName   string
	UpgradeCount  int
	TotalUpgrades int
}

// DeleteDriveInput defines the request for deleting a drive
type DeleteDriveInput struct {
	ID string
}

// DeleteDriveOutput defines the response for deleting a drive
type DeleteDriveOutput struct{}

// ListSetTypesInput defines the request for listing set types
type ListSetTypesInput struct{}

// ListSetTypesOutput defines the response for listing set types
type ListSetTypesOutput struct {
	SetTypes []*entity.SetType
}

// ListStatTypesInput defines the request for listing stat types
type ListStatTypesInput struct{}

// ListStatTypesOutput defines the response for listing stat types
type ListStatTypesOutput struct {
	Stats []string
}

// ListSlotRulesInput defines the request for the slot rule table
type ListSlotRulesInput struct{}

// ListSlotRulesOutput defines the response for the slot rule table
type ListSlotRulesOutput struct {
	Rules       []*SlotRule
	Secondaries []string
}

// SlotRule is the primary attribute rule for one slot
type SlotRule struct {
	Slot           int
	Fixed          bool
	LegalPrimaries []string
	Hint           string
}

// SeedCatalogInput defines the request for seeding the catalog.
// Empty SetTypes seeds DefaultSetTypes.
type SeedCatalogInput struct {
	SetTypes []*entity.SetType
}

// SeedCatalogOutput reports how many catalog entries were new
type SeedCatalogOutput struct {
	SetTypesAdded  int
	StatTypesAdded int
}

// GetStatisticsInput defines the request for collection statistics
type GetStatisticsInput struct{}

// GetStatisticsOutput defines the response for collection statistics
type GetStatisticsOutput struct {
	Statistics *Statistics
}

// Statistics aggregates the stored drive collection
type Statistics struct {
	TotalPieces              int
	TotalSets                int
	AvgSubstats              float64
	PositionDistribution     map[string]int
	SetDistribution          map[string]int
	MainStats                map[string]map[string]int
	SubstatFrequency         map[string]*SubstatFrequency
	SubstatCountDistribution map[int]int
	UpgradeDistribution      map[string]int
	LastUpdated              time.Time
}

// SubstatFrequency counts drives carrying a substat
type SubstatFrequency struct {
	Count      int
	Percentage float64
}

// CalculatePairingInput defines the request for a pairing probability
type CalculatePairingInput struct {
	SelectedStats []string
}

// CalculatePairingOutput defines the response for a pairing probability
type CalculatePairingOutput struct {
	Pairing *Pairing
}

// Pairing compares how often substats appear together with how often they
// would if they were independent. Percentages are in 0..100.
type Pairing struct {
	Theoretical             float64
	Actual                  float64
	Difference              float64
	MatchCount              int
	TotalPieces             int
	Expectation             int
	IndividualProbabilities map[string]float64
	SelectedStats           []string
	MatchingExamples        []*MatchingExample
}

// MatchingExample is a drive that carries every selected substat
type MatchingExample struct {
	DriveID  string
	SetName  string
	Position int
	MainStat string
}
