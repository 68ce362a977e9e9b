package constants

import "time"

const (
	AppName           = "nous"
	DefaultConfigPath = "~/.config/nous/nous.json"
	Version           = "v0.3.0"

	// DateFormat is the standard date-key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DateKeyPattern matches well-formed date keys; anything else in persisted
	// storage is treated as corruption and dropped.
	DateKeyPattern = `^\d{4}-\d{2}-\d{2}$`

	// Notify constants
	NotifierLockfileName   = "nous-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.nousjournal.nous"
	NotificationTagPrefix  = "nous-"

	// DailyMotivationTargetHour is the local hour from which the daily
	// motivational notification may fire (at most once per day).
	DailyMotivationTargetHour = 8

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "nous-"
	BackupFileSuffix = ".json"

	// Keyring constants
	KeyringLockUser = "passcode-lock"

	// MinPasscodeLength is the shortest accepted passcode.
	MinPasscodeLength = 4

	// DraftDebounce is the quiet window before an in-progress draft is flushed
	// to the draft store. Last write within the window wins.
	DraftDebounce = 500 * time.Millisecond
)

// Storage capacity limits. These are soft, caller-enforced limits (the store
// itself never rejects a write): the commit path checks the projected
// serialized size and refuses the commit with a user-facing error.
const (
	MaxMediaBytes         = 1_200_000
	MaxMediaPerEntry      = 4
	StorageBytesSoftLimit = 4_500_000
)

// Message library constants. The library is regenerated identically from the
// fixed seed on every start, so these values are part of the persistence
// contract: changing any of them changes which message a date maps to.
const (
	MessageLibrarySize      = 5000
	MessageHorizonStartYear = 2026
	MessageHorizonYears     = 12
	MessageLibrarySeed      = 20260220
	MessageAttemptsPerSlot  = 80
)

// Mood scale bounds. 3 is the neutral default.
const (
	MoodMin     = 1
	MoodMax     = 5
	MoodNeutral = 3
)
