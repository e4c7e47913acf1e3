// Package localstore Store 계층 집약과 생성을 담당
package localstore

import (
	"club_recruit_server/internal/model"
	"club_recruit_server/pkg/constants"
)

// Stores 엔티티 종류별 Store 인스턴스 집약
// 의존성 주입 입구로, 서비스 계층은 이 구조체를 통해 저장 계층에 접근한다
type Stores struct {
	Backend  Backend
	Notifier *Notifier

	Applications *Store[model.Application]     // 지원서
	Slots        *Store[model.InterviewSlot]   // 면접 슬롯
	Wishlists    *Store[model.UserWishlist]    // 위시리스트
	Users        *Store[model.LocalUser]       // 로컬 계정
	Notices      *MapStore[model.Notice]       // 동아리 공지
	Questions    *MapStore[model.ClubQuestion] // 지원서 질문
}

// NewStores 백엔드와 Notifier 를 받아 모든 Store 인스턴스 생성
func NewStores(backend Backend, notifier *Notifier) *Stores {
	return &Stores{
		Backend:      backend,
		Notifier:     notifier,
		Applications: NewStore[model.Application](constants.KindApplications, backend, notifier),
		Slots:        NewStore[model.InterviewSlot](constants.KindSlots, backend, notifier),
		Wishlists:    NewStore[model.UserWishlist](constants.KindWishlists, backend, notifier),
		Users:        NewStore[model.LocalUser](constants.KindUsers, backend, notifier),
		Notices:      NewMapStore[model.Notice](constants.KindNotices, backend, notifier),
		Questions:    NewMapStore[model.ClubQuestion](constants.KindQuestions, backend, notifier),
	}
}

// AllKinds 알림 구독에 쓰는 전체 엔티티 종류 목록
func AllKinds() []string {
	return []string{
		constants.KindApplications,
		constants.KindNotices,
		constants.KindQuestions,
		constants.KindSlots,
		constants.KindWishlists,
		constants.KindUsers,
	}
}
