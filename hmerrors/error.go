package hmerrors

// KeyNotFound - Custom error to inform that a key is not present in a chain or hash map
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no key was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// InvalidArgument - Custom error to inform that a construction argument is outside its permitted range.
// Any InvalidArgument matches InvalidArgument{} in a call to errors.Is regardless of message.
type InvalidArgument struct {
	msg string
}

// NewInvalidArgument - Returns an InvalidArgument carrying the given message
func NewInvalidArgument(msg string) InvalidArgument {
	return InvalidArgument{msg: msg}
}

// Error - Used to notify that an argument is invalid
func (I InvalidArgument) Error() string {
	if I.msg == "" {
		return "invalid argument"
	}
	return I.msg
}

// Is - Reports whether target is an InvalidArgument
func (I InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// BucketOutOfRange - Custom error to inform that a bucket number is outside the bucket array
type BucketOutOfRange struct {
	msg string
}

// NewBucketOutOfRange - Returns a BucketOutOfRange carrying the given message
func NewBucketOutOfRange(msg string) BucketOutOfRange {
	return BucketOutOfRange{msg: msg}
}

// Error - Used to notify that a bucket number is out of range
func (B BucketOutOfRange) Error() string {
	if B.msg == "" {
		return "bucket number out of range"
	}
	return B.msg
}

// Is - Reports whether target is a BucketOutOfRange
func (B BucketOutOfRange) Is(target error) bool {
	_, ok := target.(BucketOutOfRange)
	return ok
}
