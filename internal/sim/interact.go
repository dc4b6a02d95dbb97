package sim

import (
	"context"
	"time"
)

const (
	// SpeechRadius is how close the dog must be for a walker to talk to it.
	SpeechRadius = 2.0

	// FoodDropChance is the probability that a walker drops food after talking.
	FoodDropChance = 0.5

	// FoodJitter is the spread of the dropped can around the dog on each axis.
	FoodJitter = 1.0

	// EatRadius is how close the dog must be to a food can to eat it.
	EatRadius = 0.8

	// CucumberRadius is how close the dog must be to the cucumber crate.
	CucumberRadius = 1.5
)

// CucumberCrate is the fixed location of the cucumber crate in front of the grocery.
var CucumberCrate = Vec2{X: 7.8, Z: 12.5}

// Greetings are said by a walker the dog barks at.
var Greetings = []string{
	"Hallo! Was für ein süßer Hund!",
	"Oh, ein freundlicher Hund!",
	"Möchtest du Futter?",
	"Was für ein niedlicher Welpe!",
	"Guten Tag, kleiner Freund!",
}

// NotificationKind classifies a notification.
type NotificationKind string

const (
	NotifyBark      NotificationKind = "bark"
	NotifySpeech    NotificationKind = "speech"
	NotifyFoodDrop  NotificationKind = "food_dropped"
	NotifyFoodEaten NotificationKind = "food_eaten"
	NotifyCucumber  NotificationKind = "cucumber"
)

const (
	speechDesc       = "Die Person hat etwas gesagt!"
	barkMessage      = "Wuff! Wuff!"
	foodDropMessage  = "Eine Dose Futter wurde vor dir hingelegt!"
	foodEatenMessage = "Leckeres Futter gegessen! *mampf*"
	cucumberMessage  = "Mmm, leckere Gurken! *mampf*"
)

// Notification is a transient message shown to the player.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Message     string           `json:"message"`
	Description string           `json:"description,omitempty"`
	Success     bool             `json:"success,omitempty"`
	Duration    time.Duration    `json:"duration"`
}

// Publisher delivers notifications to whoever displays them.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

// Prop is a food can lying on the ground.
type Prop struct {
	ID       int  `json:"id"`
	Position Vec2 `json:"position"`
}

// FirstTalker returns the first walker, in order, within SpeechRadius of p.
func FirstTalker(p Vec2, walkers []Walker) (Walker, bool) {
	for _, w := range walkers {
		if Distance(p, w.Position) < SpeechRadius {
			return w, true
		}
	}
	return Walker{}, false
}

// EatProps splits props into those within EatRadius of p and those left over.
func EatProps(p Vec2, props []Prop) (eaten, remaining []Prop) {
	remaining = make([]Prop, 0, len(props))
	for _, pr := range props {
		if Distance(p, pr.Position) < EatRadius {
			eaten = append(eaten, pr)
			continue
		}
		remaining = append(remaining, pr)
	}
	return eaten, remaining
}

// NearCucumbers reports whether p is close enough to the cucumber crate to eat.
func NearCucumbers(p Vec2) bool {
	return Distance(p, CucumberCrate) < CucumberRadius
}
