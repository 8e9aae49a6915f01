// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
	"github.com/sirupsen/logrus"
)

// Mode selects how a detected violation is reported in checked builds.
type Mode uint32

const (
	// ModePanic panics with the *Violation. This is the default.
	ModePanic Mode = iota
	// ModeLog writes a warning through the configured logrus logger and continues.
	ModeLog
	// ModeRecord appends the violation to a bounded in-memory log and continues.
	// Drain it with Violations.
	ModeRecord
)

// String returns the name of m.
func (m Mode) String() string {
	switch m {
	case ModePanic:
		return "panic"
	case ModeLog:
		return "log"
	case ModeRecord:
		return "record"
	default:
		return "unknown"
	}
}

// recordCapacity bounds the violation log kept under ModeRecord.
// Once full, the oldest entry is discarded for each new one.
const recordCapacity = 64

var (
	mode     atomix.Uint32
	logger   logrus.FieldLogger = logrus.StandardLogger()
	recorded lfq.SPSC[Violation]
)

func init() {
	recorded.Init(recordCapacity)
}

// SetMode sets the reaction to violations and returns the previous mode.
func SetMode(m Mode) Mode {
	return Mode(mode.Swap(uint32(m)))
}

// GetMode returns the current reaction to violations.
func GetMode() Mode {
	return Mode(mode.Load())
}

// SetLogger replaces the logger used under ModeLog.
// A nil logger restores logrus.StandardLogger().
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}

// Violations drains and returns the violations recorded under ModeRecord,
// oldest first. It must run on the goroutine that owns the values,
// like every other operation in this package.
func Violations() []Violation {
	var out []Violation
	for {
		v, err := recorded.Dequeue()
		if err != nil {
			return out
		}
		out = append(out, v)
	}
}

// report dispatches v according to the current mode.
func report(v *Violation) {
	switch GetMode() {
	case ModeLog:
		logger.WithFields(logrus.Fields{
			"kind":   v.Kind.String(),
			"serial": v.Serial,
		}).Warn(v.Error())
	case ModeRecord:
		record(*v)
	default:
		panic(v)
	}
}

// record enqueues v, evicting the oldest entry while the queue is full.
func record(v Violation) {
	for {
		err := recorded.Enqueue(&v)
		if err == nil {
			return
		}
		if !iox.IsWouldBlock(err) {
			panic("own: violation log: " + err.Error())
		}
		if _, err := recorded.Dequeue(); err != nil {
			return
		}
	}
}
