// Package websocket 변경 알림 푸시 게이트웨이
// 저장 계층의 변경 알림을 구독해 연결된 모든 클라이언트에게
// "어느 컬렉션이 바뀌었는지" 만 담은 힌트 프레임을 내려보낸다
// 페이로드는 싣지 않는다. 클라이언트는 힌트를 받고 해당 목록을 다시 조회한다
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"

	"club_recruit_server/internal/dao/localstore"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const sendBufferSize = 16

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// RefreshFrame 클라이언트로 내려가는 힌트 프레임
type RefreshFrame struct {
	Type string `json:"type"` // 항상 "refresh"
	Kind string `json:"kind"` // 변경된 컬렉션 종류
}

// Client 연결 하나
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// Gateway 연결 관리와 브로드캐스트
type Gateway struct {
	mu           sync.Mutex
	clients      map[*Client]struct{}
	unsubscribes []func()
}

// NewGateway 게이트웨이 생성, 주어진 모든 kind 의 변경 알림 구독
func NewGateway(notifier *localstore.Notifier, kinds []string) *Gateway {
	g := &Gateway{
		clients: make(map[*Client]struct{}),
	}
	for _, kind := range kinds {
		k := kind
		unsub := notifier.Subscribe(k, func() {
			g.Broadcast(k)
		})
		g.unsubscribes = append(g.unsubscribes, unsub)
	}
	return g
}

// Broadcast 모든 클라이언트에게 힌트 프레임 전송
// 송신 버퍼가 가득 찬 느린 클라이언트는 프레임을 건너뛴다
// (힌트는 멱등이므로 다음 변경 때 따라잡는다)
func (g *Gateway) Broadcast(kind string) {
	frame, err := json.Marshal(RefreshFrame{Type: "refresh", Kind: kind})
	if err != nil {
		zap.L().Error("refresh frame marshal 실패", zap.Error(err))
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for client := range g.clients {
		select {
		case client.send <- frame:
		default:
		}
	}
}

// HandleConn HTTP 연결을 WebSocket 으로 업그레이드하고 등록
// GET /ws
func (g *Gateway) HandleConn(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("websocket 업그레이드 실패", zap.Error(err))
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	g.mu.Lock()
	g.clients[client] = struct{}{}
	g.mu.Unlock()
	zap.L().Info("websocket 연결", zap.Int("clients", g.clientCount()))

	go client.writeLoop()
	go g.readLoop(client)
}

// writeLoop send 채널의 프레임을 연결로 내보낸다
func (c *Client) writeLoop() {
	for frame := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
}

// readLoop 클라이언트가 보내는 프레임은 무시하고 연결 종료만 감지한다
func (g *Gateway) readLoop(client *Client) {
	defer g.remove(client)
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// remove 클라이언트 제거 및 정리
func (g *Gateway) remove(client *Client) {
	g.mu.Lock()
	_, ok := g.clients[client]
	if ok {
		delete(g.clients, client)
	}
	g.mu.Unlock()

	if ok {
		close(client.send)
		_ = client.conn.Close()
		zap.L().Info("websocket 연결 종료", zap.Int("clients", g.clientCount()))
	}
}

func (g *Gateway) clientCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.clients)
}

// Close 구독 해지 후 모든 연결 종료
func (g *Gateway) Close() {
	for _, unsub := range g.unsubscribes {
		unsub()
	}
	g.mu.Lock()
	clients := make([]*Client, 0, len(g.clients))
	for client := range g.clients {
		clients = append(clients, client)
	}
	g.clients = make(map[*Client]struct{})
	g.mu.Unlock()

	for _, client := range clients {
		close(client.send)
		_ = client.conn.Close()
	}
}
