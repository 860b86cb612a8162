/* Package zonetime provides a layered zone algebra for civil time.

zonetime treats civil time with the rigor that POSIX mktime/gmtime do not:
leap seconds, the distinction between TAI (a monotonic atomic timescale)
and UTC (which contains irregular 60-second minutes), fixed civil offsets
from UTC, summer-time rules that shift the wall clock by one hour on
designated Sundays, and user-defined rebased timescales that encode the
drift between an unsynchronised machine clock and real civil time.

A Zone is one layer of a chain of time-system transformations:

	TAI -> UTC -> fixed offset -> summer time -> rebased

Every Zone exposes the same five operations (Offset, Op, Aux, Epoch, Diff);
Raise and Lower walk the chain to move a Calendar record between systems,
and Bounce projects a record down to TAI and back up into a different
branch of the chain. Field-wise calendar arithmetic, interval arithmetic,
and cross-system conversion all compose correctly in the presence of leap
seconds and non-continuous offsets.

zonetime only models the Gregorian calendar (proleptic, i.e. extended
backwards past its 1582 introduction) and years that fit in a signed
32-bit integer. It does not model GPS time, astronomical timescales, or
the Julian/Gregorian calendar cutover of 1582-1752; a TAI operation that
lands in the 1582-10-05..1582-10-14 gap fails with the UndefinedDate code.

## FAQ

1) Why not stdlib time.Time?

time.Time has no notion of TAI, no second=60 leap-second reading, and no
summer-time rule independent of the host's tzdata. Its offset model is
continuous; zonetime's is not, by design - the whole point of the package
is to get the discontinuities right.

2) Why a chain of Zones instead of one struct with a mode flag?

Because the transformations compose: a rebased zone can sit on top of a
fixed-offset zone that sits on top of UTC, and each layer only needs to
know how to talk to the layer directly below it. Layering also makes the
"lower to the TAI leaf, then raise into another zone" pattern (Bounce) a
single short function instead of a special case per pair of systems.

3) Is a Zone safe to share across goroutines?

Yes. Zones are immutable after construction; there is no mutable shared
state inside one. A UTCZone keeps a pointer to its leapsecs.Table, which
is itself immutable: New copies the rows it is given, and a Table has no
method to add a row afterwards.

4) Why does the leap-second table live in this package instead of being
read from the host's tzdata?

Ingesting /usr/share/zoneinfo/right/UTC or a Bulletin C feed is an
external, environment-dependent concern; this package is a pure
computation library. Callers that need a live table can build their own
leapsecs.Table and pass it to NewUTCZone.

5) How correct and bug free is this package?

The zone chain is covered by example tests (raise/lower round trips,
interval add/negate/compare) as well as literal scenario tests taken from
historical leap-second transitions. There are no randomised property
tests, and knockdown invariance is not tested directly. If you find a
discrepancy against the reference leap-second table, please open an issue
with the disputed row.
*/
package zonetime
