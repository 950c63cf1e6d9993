package tariff

import (
	"fmt"

	"taskwizard/internal/pkg/errs"
)

// FulfillmentMode is the delivery mechanism whose rate table prices an order.
type FulfillmentMode int

const (
	// Drone is the designated pricing mode.
	Drone FulfillmentMode = iota + 1
	// Robot is the ground mode. Its rates are carried in the tables but never used for quotes.
	Robot
)

func (m FulfillmentMode) String() string {
	switch m {
	case Drone:
		return "drone"
	case Robot:
		return "robot"
	default:
		return "unknown"
	}
}

// WeightBracket is a named package weight tier.
type WeightBracket string

const (
	WeightUpTo1   WeightBracket = "0-1"
	Weight1To3    WeightBracket = "1-3"
	Weight3To5    WeightBracket = "3-5"
	Weight5To10   WeightBracket = "5-10"
	DefaultWeight               = WeightUpTo1
	// DefaultStopWeight is the bracket a freshly added stop starts with.
	DefaultStopWeight = Weight1To3
)

// Validate accepts the four known weight brackets.
func (b WeightBracket) Validate() error {
	switch b {
	case WeightUpTo1, Weight1To3, Weight3To5, Weight5To10:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%q is not a known weight bracket", string(b)))
	}
}

// SizeBracket is a named package size tier.
type SizeBracket string

const (
	SizeSmall       SizeBracket = "small"
	SizeMedium      SizeBracket = "medium"
	SizeLarge       SizeBracket = "large"
	SizeExtraLarge  SizeBracket = "xlarge"
	DefaultSize                 = SizeSmall
	DefaultStopSize             = SizeSmall
)

// Validate accepts the four known size brackets.
func (b SizeBracket) Validate() error {
	switch b {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not a known size bracket", string(b)))
	}
}

// ServiceLevel is the delivery speed chosen on the service step. Its fee may be negative.
type ServiceLevel string

const (
	Express        ServiceLevel = "express"
	Regular        ServiceLevel = "regular"
	Scheduled      ServiceLevel = "scheduled"
	DefaultService              = Regular
)

// Validate accepts express, regular and scheduled.
func (l ServiceLevel) Validate() error {
	switch l {
	case Express, Regular, Scheduled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("service level", fmt.Errorf("%q is not a known service level", string(l)))
	}
}

// WeightOption is one selectable weight bracket with its per-mode fees.
type WeightOption struct {
	Bracket  WeightBracket
	Label    string
	DroneFee int
	RobotFee int
}

// Fee returns the bracket fee for the given fulfillment mode.
func (o WeightOption) Fee(mode FulfillmentMode) int {
	if mode == Robot {
		return o.RobotFee
	}
	return o.DroneFee
}

// SizeOption is one selectable size bracket with its fee.
type SizeOption struct {
	Bracket SizeBracket
	Label   string
	Fee     int
}

// ServiceOption is one selectable service level with its fee delta.
type ServiceOption struct {
	Level       ServiceLevel
	Label       string
	Description string
	Fee         int
}
