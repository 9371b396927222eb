package serverstate

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/app"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// UpdateNamedSettings resolves every sent field against the stored one. A
// stored value modified later than the device's wins and comes back with
// changed=true and its modified time; otherwise the device's value is
// stored and echoed with changed=false. A field without a modified time
// counts as never edited.
func (s *State) UpdateNamedSettings(ctx context.Context, login string, req models.NamedSettingsRequest) (models.NamedSettingsResponse, error) {
	for field, value := range req.Settings {
		kind, tracked := models.TrackedSettings[field]
		if !tracked {
			return nil, fmt.Errorf("%w: %s: %w: %s", ErrInvalidData, app.MsgUnknownSetting, models.ErrUnknownSetting, field)
		}
		if value.Kind() != kind {
			return nil, fmt.Errorf("%w: %s: %w: %s", ErrInvalidData, app.MsgUnknownSetting, models.ErrSettingKindMismatch, field)
		}
	}

	resp := make(models.NamedSettingsResponse, len(req.Settings))
	err := s.data.UpdateNamedSettings(ctx, login, s.now(),
		func(held map[models.SettingField]store.ServerSetting) (map[models.SettingField]store.ServerSetting, bool) {
			writes := make(map[models.SettingField]store.ServerSetting, len(req.Settings))
			for field, value := range req.Settings {
				modified := req.Modified[field]

				stored, ok := held[field]
				if ok && stored.Modified > modified {
					resp[field] = models.SettingResult{Value: stored.Value, Changed: true, Modified: stored.Modified}
					continue
				}

				if !ok || stored.Modified != modified || stored.Value != value {
					writes[field] = store.ServerSetting{Value: value, Modified: modified}
				}
				resp[field] = models.SettingResult{Value: value}
			}
			return writes, len(writes) > 0
		})
	if err != nil {
		return nil, stateError(err)
	}
	return resp, nil
}
