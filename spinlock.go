// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ticketq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// spinLock is a test-and-test-and-set lock.
//
// Critical sections are short (one ring operation or one slot scan), so
// spinning with CPU pause hints beats parking the goroutine.
type spinLock struct {
	_     pad
	state atomix.Uint64 // 0 = free, 1 = held
	_     pad
}

func (l *spinLock) lock() {
	sw := spin.Wait{}
	for {
		if l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1) {
			return
		}
		sw.Once()
	}
}

func (l *spinLock) unlock() {
	l.state.StoreRelease(0)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
