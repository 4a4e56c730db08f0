package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfoMessage_GetMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  InfoMessage
		want string
	}{
		{
			name: "swimming",
			msg:  InfoMessage{TrainingType: "Swimming", Duration: 1, Distance: 0.9936, Speed: 1, Calories: 336},
			want: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name: "rounding_to_three_places",
			msg:  InfoMessage{TrainingType: "Running", Duration: 0.5, Distance: 9.75, Speed: 19.5, Calories: 1234.56789},
			want: "Тип тренировки: Running; Длительность: 0.500 ч.; Дистанция: 9.750 км; Ср. скорость: 19.500 км/ч; Потрачено ккал: 1234.568.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.msg.GetMessage())
		})
	}
}

func TestPacket_JSON(t *testing.T) {
	var p Packet
	err := json.Unmarshal([]byte(`{"type":"WLK","data":[9000,1,75,180]}`), &p)
	require.NoError(t, err)
	require.Equal(t, Walk, p.Type)
	require.Equal(t, []float64{9000, 1, 75, 180}, p.Data)
}
