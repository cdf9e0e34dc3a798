package store

import (
	"encoding/json"
	"fmt"

	"github.com/Khatixer/farmguard-ai/models"
)

// HistoryStore keeps each user's diagnosis records as one ordered sequence,
// newest first. Every mutation re-serializes the full sequence; records are
// never re-sorted after insertion.
type HistoryStore struct {
	kv KV
}

func NewHistoryStore(kv KV) *HistoryStore {
	return &HistoryStore{kv: kv}
}

func historyKey(userID uint) string  { return fmt.Sprintf("history:%d", userID) }
func selectedKey(userID uint) string { return fmt.Sprintf("selected:%d", userID) }

// List returns the user's records, newest first. A missing key is an empty
// history; a corrupt blob propagates as an error.
func (s *HistoryStore) List(userID uint) ([]models.DiagnosisRecord, error) {
	raw, ok, err := s.kv.Get(historyKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.DiagnosisRecord{}, nil
	}
	var records []models.DiagnosisRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("corrupt history for user %d: %w", userID, err)
	}
	return records, nil
}

func (s *HistoryStore) save(userID uint, records []models.DiagnosisRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.kv.Set(historyKey(userID), raw)
}

// Append prepends the record so the sequence stays newest-first.
func (s *HistoryStore) Append(userID uint, record models.DiagnosisRecord) error {
	records, err := s.List(userID)
	if err != nil {
		return err
	}
	records = append([]models.DiagnosisRecord{record}, records...)
	return s.save(userID, records)
}

// Get returns the record with the given id, if present.
func (s *HistoryStore) Get(userID uint, id string) (*models.DiagnosisRecord, error) {
	records, err := s.List(userID)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, nil
}

// Remove deletes the record with the given id, preserving the relative
// order of the remainder. If the removed record was the current selection,
// the selection is cleared too.
func (s *HistoryStore) Remove(userID uint, id string) (bool, error) {
	records, err := s.List(userID)
	if err != nil {
		return false, err
	}
	kept := records[:0]
	removed := false
	for _, r := range records {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return false, nil
	}
	if err := s.save(userID, kept); err != nil {
		return false, err
	}
	// The record is gone at this point; report removal even when the
	// selection cleanup fails so callers don't mistake it for "not found".
	selected, err := s.Selected(userID)
	if err != nil {
		return true, err
	}
	if selected != nil && selected.ID == id {
		if err := s.ClearSelection(userID); err != nil {
			return true, err
		}
	}
	return true, nil
}

// ToggleTreated flips the treated flag on the matching record and on the
// selected copy when it is the same record, keeping the two views
// consistent. Returns the updated record, or nil when the id is unknown.
func (s *HistoryStore) ToggleTreated(userID uint, id string) (*models.DiagnosisRecord, error) {
	records, err := s.List(userID)
	if err != nil {
		return nil, err
	}
	var updated *models.DiagnosisRecord
	for i := range records {
		if records[i].ID == id {
			records[i].IsTreated = !records[i].IsTreated
			updated = &records[i]
			break
		}
	}
	if updated == nil {
		return nil, nil
	}
	if err := s.save(userID, records); err != nil {
		return nil, err
	}
	selected, err := s.Selected(userID)
	if err != nil {
		return nil, err
	}
	if selected != nil && selected.ID == id {
		selected.IsTreated = updated.IsTreated
		if err := s.setSelected(userID, *selected); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// Select marks the record as the one currently viewed by the client.
func (s *HistoryStore) Select(userID uint, id string) (*models.DiagnosisRecord, error) {
	record, err := s.Get(userID, id)
	if err != nil || record == nil {
		return nil, err
	}
	if err := s.setSelected(userID, *record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *HistoryStore) setSelected(userID uint, record models.DiagnosisRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.kv.Set(selectedKey(userID), raw)
}

// Selected returns the currently viewed record, or nil when none is set.
func (s *HistoryStore) Selected(userID uint) (*models.DiagnosisRecord, error) {
	raw, ok, err := s.kv.Get(selectedKey(userID))
	if err != nil || !ok {
		return nil, err
	}
	var record models.DiagnosisRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("corrupt selection for user %d: %w", userID, err)
	}
	return &record, nil
}

func (s *HistoryStore) ClearSelection(userID uint) error {
	return s.kv.Delete(selectedKey(userID))
}
