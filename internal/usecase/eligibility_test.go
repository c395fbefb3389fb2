package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestCheckEligibility(t *testing.T) {
	tests := []struct {
		name    string
		seed    func(m *memStore)
		wantErr error
	}{
		{
			name:    "no enrollment",
			seed:    func(m *memStore) {},
			wantErr: ErrEnrollmentNotFound,
		},
		{
			name:    "enrollment without ticket",
			seed:    func(m *memStore) { m.addEnrollment(1) },
			wantErr: ErrTicketNotFound,
		},
		{
			name:    "ticket type without hotel",
			seed:    func(m *memStore) { m.addTicket(1, entity.TicketStatusPaid, false, false) },
			wantErr: ErrInvalidTicket,
		},
		{
			name:    "remote ticket type",
			seed:    func(m *memStore) { m.addTicket(1, entity.TicketStatusPaid, true, true) },
			wantErr: ErrInvalidTicket,
		},
		{
			name:    "reserved but not paid",
			seed:    func(m *memStore) { m.addTicket(1, entity.TicketStatusReserved, true, false) },
			wantErr: ErrInvalidTicket,
		},
		{
			name:    "paid in-person ticket with hotel",
			seed:    func(m *memStore) { m.addValidUser(1) },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			tt.seed(store)

			err := CheckEligibility(context.Background(), store.repository(), 1)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
