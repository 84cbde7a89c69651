package entity

type Page struct {
	Items         []Application
	TotalPages    int
	TotalElements int
}

type ListQuery struct {
	Page   int
	Size   int
	Search string
}

func (q ListQuery) Validate() error {
	if q.Page < 1 || q.Size < 1 {
		return ErrInvalidArgument
	}

	return nil
}

// Range returns the one-based indexes of the first and last item shown on page.
func Range(page, size, totalElements int) (first, last int) {
	if totalElements <= 0 {
		return 0, 0
	}

	return (page-1)*size + 1, min(page*size, totalElements)
}
