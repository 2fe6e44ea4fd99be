package repository

import "time"

// Script represents a script row.
type Script struct {
	ID        string
	Title     string
	Author    *string
	Revision  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Scene represents a scene row within a script.
type Scene struct {
	ID          string
	ScriptID    string
	Number      string
	Slugline    string
	Synopsis    *string
	TimeOfDay   *string
	PageEighths int
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ElementCategory represents a breakdown category (cast, props, wardrobe...).
type ElementCategory struct {
	ID        string
	Name      string
	Color     string
	SortOrder int
}

// Element represents a breakdown element tagged on a scene.
type Element struct {
	ID         string
	SceneID    string
	CategoryID *string
	Name       string
	Quantity   int
	Notes      *string
	SortOrder  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Frame represents a storyboard frame within a scene.
type Frame struct {
	ID        string
	SceneID   string
	Caption   string
	ShotType  *string
	ImagePath *string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShootDay represents a scheduled shooting day.
type ShootDay struct {
	ID        string
	Date      time.Time
	Label     *string
	SortOrder int
}

// Strip represents a schedule strip. A nil DayID means the strip sits in the
// boneyard (unscheduled pool).
type Strip struct {
	ID        string
	SceneID   string
	DayID     *string
	Status    string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
