package user

import "venuebook/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid role")
