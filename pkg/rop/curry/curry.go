package curry

// Curry2 returns fn taking its arguments one call at a time; fn runs
// only once the last argument is supplied.
func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return fn(a, b, c)
			}
		}
	}
}

func Curry4[A, B, C, D, R any](fn func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R {
					return fn(a, b, c, d)
				}
			}
		}
	}
}

func Curry5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R) func(A) func(B) func(C) func(D) func(E) R {
	return func(a A) func(B) func(C) func(D) func(E) R {
		return func(b B) func(C) func(D) func(E) R {
			return func(c C) func(D) func(E) R {
				return func(d D) func(E) R {
					return func(e E) R {
						return fn(a, b, c, d, e)
					}
				}
			}
		}
	}
}

func Curry6[A, B, C, D, E, F, R any](fn func(A, B, C, D, E, F) R) func(A) func(B) func(C) func(D) func(E) func(F) R {
	return func(a A) func(B) func(C) func(D) func(E) func(F) R {
		return func(b B) func(C) func(D) func(E) func(F) R {
			return func(c C) func(D) func(E) func(F) R {
				return func(d D) func(E) func(F) R {
					return func(e E) func(F) R {
						return func(f F) R {
							return fn(a, b, c, d, e, f)
						}
					}
				}
			}
		}
	}
}

func Curry7[A, B, C, D, E, F, G, R any](fn func(A, B, C, D, E, F, G) R) func(A) func(B) func(C) func(D) func(E) func(F) func(G) R {
	return func(a A) func(B) func(C) func(D) func(E) func(F) func(G) R {
		return func(b B) func(C) func(D) func(E) func(F) func(G) R {
			return func(c C) func(D) func(E) func(F) func(G) R {
				return func(d D) func(E) func(F) func(G) R {
					return func(e E) func(F) func(G) R {
						return func(f F) func(G) R {
							return func(g G) R {
								return fn(a, b, c, d, e, f, g)
							}
						}
					}
				}
			}
		}
	}
}

func Curry8[A, B, C, D, E, F, G, H, R any](fn func(A, B, C, D, E, F, G, H) R) func(A) func(B) func(C) func(D) func(E) func(F) func(G) func(H) R {
	return func(a A) func(B) func(C) func(D) func(E) func(F) func(G) func(H) R {
		return func(b B) func(C) func(D) func(E) func(F) func(G) func(H) R {
			return func(c C) func(D) func(E) func(F) func(G) func(H) R {
				return func(d D) func(E) func(F) func(G) func(H) R {
					return func(e E) func(F) func(G) func(H) R {
						return func(f F) func(G) func(H) R {
							return func(g G) func(H) R {
								return func(h H) R {
									return fn(a, b, c, d, e, f, g, h)
								}
							}
						}
					}
				}
			}
		}
	}
}
