package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingAction_DecodesConcreteVariant(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	first := "Amina"

	tests := []struct {
		action Action
		name   string
	}{
		{name: "register", action: RegisterAction{UserID: 1, Email: "a@b.co", Role: RoleRefugee, Timestamp: now}},
		{name: "update profile", action: UpdateProfileAction{UserID: 2, Updates: ProfileUpdate{FirstName: &first}, Timestamp: now}},
		{name: "change password", action: ChangePasswordAction{UserID: 3, Timestamp: now}},
		{name: "progress", action: ProgressAction{UserID: 4, CourseID: "c1", ModuleID: "m1", ContentType: "quiz", ItemIndex: 1, Timestamp: now}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pa := PendingAction{ID: 7, CreatedAt: now, SyncStatus: ActionStatusPending, Action: tt.action}

			data, err := json.Marshal(pa)
			require.NoError(t, err)

			// В конверте есть тип и userId для индексов
			var env map[string]any
			require.NoError(t, json.Unmarshal(data, &env))
			assert.Equal(t, string(tt.action.Type()), env["type"])
			assert.EqualValues(t, tt.action.TargetUser(), env["userId"])

			var decoded PendingAction
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.IsType(t, tt.action, decoded.Action)
			assert.Equal(t, tt.action, decoded.Action)
		})
	}
}

func TestPendingAction_UnknownType(t *testing.T) {
	var pa PendingAction
	err := json.Unmarshal([]byte(`{"id":1,"type":"deleteEverything","data":{}}`), &pa)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action type")
}

func TestPendingAction_MarshalWithoutPayload(t *testing.T) {
	_, err := json.Marshal(PendingAction{ID: 1})
	assert.Error(t, err)
}

func TestProgressAction_ItemID(t *testing.T) {
	a := ProgressAction{ContentType: "quiz", ItemIndex: 1}
	assert.Equal(t, "quiz-1", a.ItemID())
}
