package like

type Service interface {
	Like(postID, userID uint64) (count int64, already bool, err error)
	Unlike(postID, userID uint64) (count int64, missing bool, err error)
	Count(postID uint64) (int64, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Like(postID, userID uint64) (int64, bool, error) {
	return s.repo.Like(postID, userID)
}

func (s *service) Unlike(postID, userID uint64) (int64, bool, error) {
	return s.repo.Unlike(postID, userID)
}

func (s *service) Count(postID uint64) (int64, error) {
	return s.repo.Count(postID)
}
