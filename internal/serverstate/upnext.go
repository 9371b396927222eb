package serverstate

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/app"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/internal/upnext"
	"github.com/MKhiriev/go-pod-sync/models"
)

// UpNextSync replays the device's pending changes onto the canonical queue
// and returns it. serverModified moves forward only when changes arrive, so
// a device that sends nothing and holds the current counter sees it
// unchanged.
func (s *State) UpNextSync(ctx context.Context, login string, req models.UpNextSyncRequest) (models.UpNextSyncResponse, error) {
	changes := make([]models.UpNextChange, 0, len(req.UpNext.Changes))
	for i, rec := range req.UpNext.Changes {
		c := rec.Change()
		if !c.Action.Valid() {
			return models.UpNextSyncResponse{}, fmt.Errorf("%w: %s %d", ErrInvalidData, app.MsgUnknownUpNextAction, int(c.Action))
		}
		if c.Action != models.UpNextActionReplace && c.UUID == "" {
			return models.UpNextSyncResponse{}, fmt.Errorf("%w: %s needs an episode uuid", ErrInvalidData, c.Action)
		}
		// the log order of the batch breaks ties between equal timestamps
		c.ID = int64(i)
		changes = append(changes, c)
	}

	queue, err := s.data.UpdateUpNext(ctx, login, s.now(), func(held store.ServerUpNext) (store.ServerUpNext, bool) {
		if len(changes) == 0 {
			return held, false
		}
		return store.ServerUpNext{
			Episodes:       upnext.Replay(held.Episodes, changes),
			ServerModified: s.nextServerModified(held.ServerModified),
		}, true
	})
	if err != nil {
		return models.UpNextSyncResponse{}, stateError(err)
	}

	resp := models.UpNextSyncResponse{
		ServerModified: queue.ServerModified,
		Episodes:       make([]models.UpNextEpisodeRecord, 0, len(queue.Episodes)),
	}
	for _, ep := range queue.Episodes {
		resp.Episodes = append(resp.Episodes, models.NewUpNextEpisodeRecord(ep))
	}
	return resp, nil
}

func (s *State) nextServerModified(current int64) int64 {
	now := s.clock.Now().UnixMilli()
	if now <= current {
		return current + 1
	}
	return now
}
