package subscriber

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/streetbites/streetbites_backend/internal/service/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeMessage - минимальная реализация mqtt.Message для тестов
type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 1 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 0 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

func newTestSubscriber(t *testing.T) (*LocationSubscriber, *mocks.MockBusinessService) {
	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockBusinessService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewLocationSubscriber(nil, serviceMock, logger), serviceMock
}

func TestHandleMessage_UpdatesLocation(t *testing.T) {
	// Подготовка
	sub, serviceMock := newTestSubscriber(t)
	businessID := uuid.New()
	payload, _ := json.Marshal(locationMessage{
		BusinessID: businessID.String(),
		Latitude:   40.7128,
		Longitude:  -74.0060,
		Timestamp:  time.Now().Unix(),
	})

	// Ожидания
	serviceMock.EXPECT().
		UpdateLocation(gomock.Any(), businessID, models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}).
		Return(nil).
		Times(1)

	// Действие
	sub.handleMessage(nil, &fakeMessage{topic: "/streetbites/truck/" + businessID.String() + "/location", payload: payload})
}

func TestHandleMessage_InvalidJSON(t *testing.T) {
	// Подготовка: сервис не должен вызываться
	sub, _ := newTestSubscriber(t)

	// Действие
	sub.handleMessage(nil, &fakeMessage{topic: topicPattern, payload: []byte("{not json")})
}

func TestHandleMessage_OutOfRangeLatitude(t *testing.T) {
	// Подготовка
	sub, _ := newTestSubscriber(t)
	payload, _ := json.Marshal(locationMessage{
		BusinessID: uuid.NewString(),
		Latitude:   95,
		Longitude:  0,
		Timestamp:  time.Now().Unix(),
	})

	// Действие: невалидная широта отбрасывается до вызова сервиса
	sub.handleMessage(nil, &fakeMessage{topic: topicPattern, payload: payload})
}

func TestValidateLocationMessage(t *testing.T) {
	valid := locationMessage{
		BusinessID: uuid.NewString(),
		Latitude:   40.7,
		Longitude:  -74.0,
		Timestamp:  1700000000,
	}
	require.NoError(t, validateLocationMessage(&valid))

	missingID := valid
	missingID.BusinessID = ""
	require.Error(t, validateLocationMessage(&missingID))

	badTimestamp := valid
	badTimestamp.Timestamp = 0
	require.Error(t, validateLocationMessage(&badTimestamp))
}
